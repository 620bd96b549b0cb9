package utils

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// SendResetCodeEmail delivers a password reset code over SMTP.
func SendResetCodeEmail(email, code string) error {
	host := os.Getenv("SMTP_HOST")
	user := os.Getenv("SMTP_USER")
	pass := os.Getenv("SMTP_PASS")
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		return fmt.Errorf("invalid SMTP_PORT value: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", user)
	m.SetHeader("To", email)
	m.SetHeader("Subject", "VidaClinic password reset code")
	m.SetBody("text/plain", "Your VidaClinic password reset code is: "+code)
	m.AddAlternative("text/html", resetEmailHTML(code))

	return gomail.NewDialer(host, port, user, pass).DialAndSend(m)
}

func resetEmailHTML(code string) string {
	return `
	<!DOCTYPE html>
	<html>
	<head>
		<title>Password reset</title>
		<style>
			body { font-family: Arial, sans-serif; background-color: #f4f7f6; margin: 0; padding: 0; }
			.container { background-color: #ffffff; margin: 20px auto; padding: 24px; border-radius: 8px; max-width: 560px; }
			h1 { color: #1f6f5c; }
			p { color: #555555; }
			.code { font-size: 24px; font-weight: bold; letter-spacing: 4px; color: #1f6f5c; }
		</style>
	</head>
	<body>
		<div class="container">
			<h1>VidaClinic</h1>
			<p>Your password reset code is:</p>
			<p class="code">` + code + `</p>
			<p>The code expires in 15 minutes. If you did not request a reset, ignore this email.</p>
		</div>
	</body>
	</html>
	`
}
