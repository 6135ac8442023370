package mailer

// Built-in template ids.
const (
	TemplateDefault      = "default"
	TemplateNotification = "notification"
)

const defaultLayout = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Subject}}</title>
<style>{{.Style}}</style>
</head>
<body>
<div class="email-container">
<div class="content">
<h1>{{.Subject}}</h1>
{{range .Blocks}}{{formatBlock .}}
{{end}}</div>
</div>
</body>
</html>
`

const notificationLayout = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Subject}}</title>
<style>{{.Style}}</style>
</head>
<body>
<div class="email-container notification">
<div class="notification-header">
<h1 class="email-subject">{{.Subject}}</h1>
{{if and .Metadata.ShowPriority .Metadata.Priority}}{{priorityBadge .Metadata.Priority}}{{end}}
</div>
<div class="content">
{{range .Blocks}}{{formatBlock .}}
{{end}}</div>
</div>
</body>
</html>
`

const containerStyle = `body{margin:0;padding:0;font-family:-apple-system,BlinkMacSystemFont,'Segoe UI',Roboto,sans-serif;line-height:1.6;color:#333;background-color:#f6f9fc}
.email-container{max-width:600px;margin:20px auto;background-color:#fff;border-radius:8px;overflow:hidden}
.content{padding:32px 24px}
h1{color:#2c3e50;font-size:24px;font-weight:600;margin:0 0 24px;padding-bottom:16px;border-bottom:1px solid #eaeaea}
.email-paragraph{margin:0 0 20px;color:#2c3e50}
.email-heading{color:#111827;font-size:20px;font-weight:600;margin:24px 0 16px}
.email-list{margin:20px 0;padding-left:20px}
.email-list-item{margin:8px 0}
.email-signature{margin-top:30px;padding-top:20px;border-top:1px solid #eaeaea;font-style:italic;color:#666}
.email-callout{margin:16px 0;padding:16px;border-left:4px solid #2c3e50;background:#f8f9fa}`

const notificationStyle = `.notification{border:1px solid #e1e4e8;border-radius:6px}
.notification-header{display:flex;align-items:center;justify-content:space-between;padding:24px 24px 0}
.priority-badge{display:inline-block;padding:4px 8px;border-radius:12px;color:#fff;font-size:12px;font-weight:500;letter-spacing:.5px}
.notification .email-paragraph{background:#f8f9fa;padding:16px;border-radius:4px;margin:12px 0}
.notification .email-list{background:#f8f9fa;padding:16px 16px 16px 36px;border-radius:4px;margin:12px 0}`

func builtinTemplates() []*Template {
	return []*Template{
		{
			ID:        TemplateDefault,
			Name:      "Default Template",
			HTML:      defaultLayout,
			Variables: []string{"Subject", "Blocks", "Style"},
			DefaultStyle: Style{
				Container: containerStyle,
			},
		},
		{
			ID:        TemplateNotification,
			Name:      "Notification Template",
			HTML:      notificationLayout,
			Variables: []string{"Subject", "Blocks", "Style", "Metadata"},
			DefaultStyle: Style{
				Container:    containerStyle,
				Notification: notificationStyle,
			},
		},
	}
}
