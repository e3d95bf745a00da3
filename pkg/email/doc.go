// Package email sends transactional mail through Postmark, or to disk with
// DevSender during local development.
//
//	var sender email.EmailSender = email.NewDevSender(cfg.DevDir)
//	if cfg.PostmarkServerToken != "" {
//		sender, err = email.NewPostmarkClient(cfg)
//	}
//	err = sender.SendEmail(ctx, email.SendEmailParams{
//		SendTo:   "owner@example.com",
//		Subject:  "New download request",
//		BodyHTML: body,
//		Tag:      "lead",
//	})
package email
