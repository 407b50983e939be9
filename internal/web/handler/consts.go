package handler

const (
	// BaseLayout is the layout template for public site pages.
	BaseLayout = "layouts/base"

	// AdminLayout is the layout template for admin panel pages.
	AdminLayout = "layouts/admin"

	// RootPath is the root path of a route group.
	RootPath = "/"

	// ErrNilACDFatalLogMsg is used if app or cfg or db var pointer is nil.
	ErrNilACDFatalLogMsg = "app, cfg or db is nil"
)
