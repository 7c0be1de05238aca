package server

import (
	"fmt"
	"html"

	"github.com/BerryBytes/ccactl/models"
)

const pageStyle = `<style>
body { font-family: Arial, sans-serif; max-width: 600px; margin: 50px auto; padding: 20px; text-align: center; }
.info { background: #f8f9fa; padding: 15px; border-radius: 5px; margin: 20px 0; }
.ok { color: #28a745; }
.bad { color: #dc3545; }
</style>`

const missingTokenPage = `<html><head>` + pageStyle + `</head><body><h1 class="bad">Error: Missing token</h1></body></html>`

const invalidTokenPage = `<html><head>` + pageStyle + `</head><body><h1 class="bad">Error: Invalid or expired token</h1></body></html>`

const creationFailedPage = `<html><head>` + pageStyle + `</head><body><h1 class="bad">Error Creating User</h1><p>The request could not be completed. Check the service logs.</p></body></html>`

func approvedPage(reg *models.Registration) string {
	return fmt.Sprintf(`<html>
<head><title>Registration Approved</title>%s</head>
<body>
  <h1 class="ok">Registration Approved</h1>
  <div class="info">
    <p><strong>Username:</strong> %s</p>
    <p><strong>Email:</strong> %s</p>
    <p><strong>Name:</strong> %s</p>
  </div>
  <p>User has been created successfully.</p>
  <p>They will receive an email to set their password.</p>
</body>
</html>`, pageStyle, html.EscapeString(reg.Username), html.EscapeString(reg.Email), html.EscapeString(reg.FullName()))
}

func alreadyExistsPage(reg *models.Registration) string {
	return fmt.Sprintf(`<html>
<head><title>User Already Exists</title>%s</head>
<body>
  <h1>User Already Exists</h1>
  <p>User %s was already created.</p>
</body>
</html>`, pageStyle, html.EscapeString(reg.Username))
}

func deniedPage(reg *models.Registration) string {
	return fmt.Sprintf(`<html>
<head><title>Registration Denied</title>%s</head>
<body>
  <h1 class="bad">Registration Denied</h1>
  <div class="info">
    <p><strong>Username:</strong> %s</p>
    <p><strong>Email:</strong> %s</p>
  </div>
  <p>Registration request has been denied.</p>
</body>
</html>`, pageStyle, html.EscapeString(reg.Username), html.EscapeString(reg.Email))
}
