package email

import (
	"fmt"
)

// AccountEmailData contains the data needed for account email templates.
type AccountEmailData struct {
	FirstName       string
	Email           string
	VerificationURL string
	OTPCode         string
	ExpiryMinutes   int
	AppName         string
}

// BuildVerificationEmail creates a verification email message for new accounts.
func BuildVerificationEmail(data AccountEmailData) Message {
	appName := data.AppName
	if appName == "" {
		appName = "Clinova"
	}

	firstName := data.FirstName
	if firstName == "" {
		firstName = "there"
	}

	subject := fmt.Sprintf("Verify your %s email address", appName)

	textBody := fmt.Sprintf(`Hi %s,

Welcome to %s!

Please verify your email by clicking the link below:
%s

If you didn't create this account, you can safely ignore this email.

Thanks,
The %s Team`,
		firstName, appName, data.VerificationURL, appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">Hi %s,</h2>
    <p>Welcome to %s!</p>
    <p>Please verify your email by clicking the button below:</p>
    <p style="text-align: center; margin: 30px 0;">
        <a href="%s" style="background-color: #2563eb; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">Verify Email</a>
    </p>
    <p style="color: #6b7280; font-size: 14px;">If you didn't create this account, you can safely ignore this email.</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The %s Team</p>
</body>
</html>`,
		firstName, appName, data.VerificationURL, appName)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// BuildPasswordResetEmail creates a password reset email carrying a one-time code.
func BuildPasswordResetEmail(data AccountEmailData) Message {
	appName := data.AppName
	if appName == "" {
		appName = "Clinova"
	}

	firstName := data.FirstName
	if firstName == "" {
		firstName = "there"
	}

	expiry := data.ExpiryMinutes
	if expiry <= 0 {
		expiry = 15
	}

	subject := fmt.Sprintf("Your %s password reset code", appName)

	textBody := fmt.Sprintf(`Hi %s,

We received a request to reset your %s password.

Your reset code: %s

This code expires in %d minutes. If you didn't request a reset, you can safely ignore this email.

Thanks,
The %s Team`,
		firstName, appName, data.OTPCode, expiry, appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">Hi %s,</h2>
    <p>We received a request to reset your %s password.</p>
    <p>Your reset code:</p>
    <p style="background-color: #f3f4f6; padding: 14px 20px; border-radius: 4px; font-family: monospace; font-size: 24px; letter-spacing: 4px; text-align: center;">%s</p>
    <p style="color: #6b7280; font-size: 14px;"><em>This code expires in %d minutes.</em></p>
    <p style="color: #6b7280; font-size: 14px;">If you didn't request a reset, you can safely ignore this email.</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The %s Team</p>
</body>
</html>`,
		firstName, appName, data.OTPCode, expiry, appName)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// ReceiptEmailData contains the data needed for payment receipt emails.
type ReceiptEmailData struct {
	Email         string
	PatientName   string
	ClinicName    string
	InvoiceNumber string
	AmountPaid    string
	Balance       string
	AppName       string
}

// BuildPaymentReceiptEmail creates a payment receipt email for a patient.
func BuildPaymentReceiptEmail(data ReceiptEmailData) Message {
	appName := data.AppName
	if appName == "" {
		appName = "Clinova"
	}

	name := data.PatientName
	if name == "" {
		name = "there"
	}

	subject := fmt.Sprintf("Payment receipt for invoice %s", data.InvoiceNumber)

	textBody := fmt.Sprintf(`Hi %s,

We received your payment at %s.

Invoice: %s
Amount paid: %s
Remaining balance: %s

Thank you,
%s (via %s)`,
		name, data.ClinicName, data.InvoiceNumber, data.AmountPaid, data.Balance, data.ClinicName, appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">Hi %s,</h2>
    <p>We received your payment at %s.</p>
    <table style="width: 100%%; border-collapse: collapse; margin: 20px 0;">
        <tr><td style="padding: 8px 0; color: #6b7280;">Invoice</td><td style="padding: 8px 0; text-align: right;"><strong>%s</strong></td></tr>
        <tr><td style="padding: 8px 0; color: #6b7280;">Amount paid</td><td style="padding: 8px 0; text-align: right;"><strong>%s</strong></td></tr>
        <tr><td style="padding: 8px 0; color: #6b7280;">Remaining balance</td><td style="padding: 8px 0; text-align: right;"><strong>%s</strong></td></tr>
    </table>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thank you,<br>%s (via %s)</p>
</body>
</html>`,
		name, data.ClinicName, data.InvoiceNumber, data.AmountPaid, data.Balance, data.ClinicName, appName)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}
