// Package submit is the client side of the landing page: it posts the
// visitor's email and platform to the collection endpoint and, once the
// endpoint accepts it, starts the platform's download.
//
// Page interaction sits behind small interfaces so the same flow runs in a
// browser bridge, a terminal or a test:
//
//	client, err := submit.New("https://example.com/api/collect-email", submit.DefaultTargets(),
//		submit.WithView(view),
//		submit.WithDownloader(submit.NewFileDownloader(ctx, "./downloads", nil, log)),
//	)
//	if err != nil {
//		return err
//	}
//	err = client.Submit(ctx, "jane@example.com", "windows")
//
// Empty input is ignored. An unknown platform fails before any request is
// made. Transport failures alert "An error occurred. Please try again." and
// are not retried. Non-2xx answers alert the endpoint's error message and
// skip the download. On success the notice is hidden again after five
// seconds.
package submit
