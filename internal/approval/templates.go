package approval

import (
	"fmt"
	"time"

	"github.com/BerryBytes/ccactl/models"
)

func adminRequestEmail(reg *models.Registration, approveURL, denyURL string) (subject, text, html string) {
	subject = fmt.Sprintf("[CCA] New Registration Request: %s", reg.Username)

	text = fmt.Sprintf(`New Cloud CLI Access registration request:

Username: %s
Email: %s
Name: %s
Submitted: %s

To approve this request:
%s

To deny this request:
%s

These links will expire in 7 days.
`, reg.Username, reg.Email, reg.FullName(), reg.SubmittedAt.Format(time.RFC3339), approveURL, denyURL)

	html = fmt.Sprintf(`<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
  <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2>New Registration Request</h2>
    <div style="background: #f8f9fa; padding: 15px; border-radius: 5px;">
      <p><strong>Username:</strong> %s</p>
      <p><strong>Email:</strong> %s</p>
      <p><strong>Name:</strong> %s</p>
      <p><strong>Submitted:</strong> %s</p>
    </div>
    <div style="text-align: center; margin: 30px 0;">
      <a href="%s" style="display: inline-block; padding: 12px 30px; margin: 10px 5px; background: #28a745; color: white; text-decoration: none; border-radius: 5px; font-weight: bold;">Approve</a>
      <a href="%s" style="display: inline-block; padding: 12px 30px; margin: 10px 5px; background: #dc3545; color: white; text-decoration: none; border-radius: 5px; font-weight: bold;">Deny</a>
    </div>
    <p style="color: #666; font-size: 12px; text-align: center;">These links will expire in 7 days.</p>
  </div>
</body>
</html>`, reg.Username, reg.Email, reg.FullName(), reg.SubmittedAt.Format(time.RFC3339), approveURL, denyURL)

	return subject, text, html
}

func welcomeEmail(reg *models.Registration, ssoStartURL string) (subject, text, html string) {
	subject = "Welcome to Cloud CLI Access"

	text = fmt.Sprintf(`Welcome to Cloud CLI Access!

Your registration has been approved.

Username: %s
Email: %s

IMPORTANT - Set Your Password:
You will receive a separate email from AWS IAM Identity Center with a link to set your password.
Please check your inbox (and spam folder) for an email with the subject "Invitation to join AWS IAM Identity Center".

After setting your password, you can log in using the ccactl tool:

1. Install ccactl (if not already installed)
2. Run: ccactl configure
3. Run: ccactl login
4. When prompted, authenticate at: %s

For help, contact your administrator.

Best regards,
Cloud CLI Access Team
`, reg.Username, reg.Email, ssoStartURL)

	html = fmt.Sprintf(`<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
  <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
    <h1>Welcome to Cloud CLI Access!</h1>
    <p>Your registration has been approved.</p>
    <div style="background: #f8f9fa; padding: 15px; border-left: 4px solid #667eea; margin: 20px 0;">
      <strong>Your Account:</strong><br>
      Username: %s<br>
      Email: %s
    </div>
    <div style="background: #fff3cd; border-left: 4px solid #ffc107; padding: 15px; margin: 20px 0;">
      <strong>IMPORTANT - Set Your Password:</strong><br>
      You will receive a separate email from AWS IAM Identity Center with a link to set your password.
      Check your inbox (and spam folder) for an email with the subject:<br>
      <em>"Invitation to join AWS IAM Identity Center"</em>
    </div>
    <h3>Getting Started:</h3>
    <ol>
      <li>Set your password using the link from AWS</li>
      <li>Install ccactl</li>
      <li>Run: <code>ccactl configure</code></li>
      <li>Run: <code>ccactl login</code></li>
      <li>Authenticate at: <a href="%s">%s</a></li>
    </ol>
    <p>For help, contact your administrator.</p>
    <p>Best regards,<br><strong>Cloud CLI Access Team</strong></p>
  </div>
</body>
</html>`, reg.Username, reg.Email, ssoStartURL, ssoStartURL)

	return subject, text, html
}

func denialEmail(reg *models.Registration) (subject, text, html string) {
	subject = "Cloud CLI Access Registration Status"

	text = fmt.Sprintf(`Hello %s,

Thank you for your interest in Cloud CLI Access.

Unfortunately, your registration request has not been approved at this time.

If you believe this is an error or would like more information, please contact the administrator.

Best regards,
Cloud CLI Access Team
`, reg.FirstName)

	html = fmt.Sprintf(`<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
  <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2>Cloud CLI Access Registration</h2>
    <p>Hello %s,</p>
    <p>Thank you for your interest in Cloud CLI Access.</p>
    <p>Unfortunately, your registration request has not been approved at this time.</p>
    <p>If you believe this is an error or would like more information, please contact the administrator.</p>
    <p>Best regards,<br><strong>Cloud CLI Access Team</strong></p>
  </div>
</body>
</html>`, reg.FirstName)

	return subject, text, html
}
