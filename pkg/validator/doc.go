// Package validator provides small composable validation rules.
//
// A Rule pairs a check with the ValidationError reported when it fails.
// Apply runs every rule and collects the failures into ValidationErrors:
//
//	err := validator.Apply(
//		validator.Required("email", rec.Email),
//		validator.Contains("email", rec.Email, "@"),
//	)
//	if errs := validator.ExtractValidationErrors(err); errs.Has("email") {
//		// reject the request
//	}
package validator
