// Package opensearch creates OpenSearch clients for the search-index sink.
//
//	client, err := opensearch.New(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	checks["opensearch"] = opensearch.Healthcheck(client)
package opensearch
