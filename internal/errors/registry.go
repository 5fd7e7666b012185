package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Render Errors (A001-A019)
	// ============================================

	"A001": {
		Category: CategoryRender,
		Message:  "Page handler returned nil",
		Detail:   "A registered page handler returned a nil node tree. Return ui.Nothing() for intentionally empty pages.",
		DocURL:   "https://atrium-ui.dev/docs/errors/A001",
	},
	"A002": {
		Category: CategoryRender,
		Message:  "Render failed",
		Detail:   "The HTML renderer could not serialize the node tree.",
		DocURL:   "https://atrium-ui.dev/docs/errors/A002",
	},

	// Resource codes are reserved (A020-A039): producer errors pass
	// through resources verbatim so callers can match on the message.

	// ============================================
	// Publish Errors (A040-A059)
	// ============================================

	"A040": {
		Category: CategoryPublish,
		Message:  "Upload failed",
		Detail:   "The rendered page could not be uploaded to the object store.",
		DocURL:   "https://atrium-ui.dev/docs/errors/A040",
	},
	"A041": {
		Category: CategoryPublish,
		Message:  "Nothing to publish",
		Detail:   "No pages are registered on the app, so there is nothing to render and upload.",
		DocURL:   "https://atrium-ui.dev/docs/errors/A041",
	},

	// ============================================
	// Config Errors (A060-A079)
	// ============================================

	"A060": {
		Category: CategoryConfig,
		Message:  "Config file not readable",
		Detail:   "The configuration file exists but could not be parsed.",
		DocURL:   "https://atrium-ui.dev/docs/errors/A060",
	},
	"A061": {
		Category: CategoryConfig,
		Message:  "Invalid config value",
		Detail:   "A configuration value is out of range or has the wrong type.",
		DocURL:   "https://atrium-ui.dev/docs/errors/A061",
	},
}
