// Package sinks provides the persistent record sinks for the collection
// endpoint and Build, which assembles them from configuration.
//
// Available sinks, selected by name in COLLECT_SINKS:
//
//	log         one structured log entry (default)
//	memory      in-process list, lost on restart
//	redis       LPUSH of the JSON record onto REDIS_LIST_KEY
//	postgres    INSERT into email_submissions, schema applied with goose
//	mongo       one document per record in MONGODB_COLLECTION
//	opensearch  one indexed document per record in OPENSEARCH_INDEX
//	webhook     POST of the JSON record to WEBHOOK_URL, optionally signed
//	email       notification to NOTIFY_EMAIL through Postmark or the dev sender
package sinks
