package internal

const (
	DotEnvPath    = "./.env"
	MigrationsDir = "migrations"
	SessionCookie = "session"

	// UnauthorizedMessage gates every protected route. The browser client and
	// pkg/apiclient match this string byte-for-byte to trigger a redirect to
	// the login screen, so it must never be reworded on one side only.
	UnauthorizedMessage = "Invalid session, please login again"

	AdminUsername = "claudineifrogo"
	AdminPassword = "paverbrasil2026"
	AdminOpenID   = "local-admin-user"
	AdminName     = "Administrador PaverBrasil"
	AdminEmail    = "admin@paverbrasil.com"
)
