package notify

import (
	"bytes"
	"fmt"
	"html/template"
)

const layout = `<div style="font-family: sans-serif; max-width: 480px; margin: 0 auto; padding: 24px;">
	<h2 style="color: #333;">{{.Heading}}</h2>
	{{range .Paragraphs}}<p>{{.}}</p>
	{{end}}<p style="color: #aaa; font-size: 12px;">
		If you didn't sign up for this, you can safely ignore this email.
	</p>
</div>`

var layoutTmpl = template.Must(template.New("email").Parse(layout))

type emailBody struct {
	Heading    string
	Paragraphs []string
}

func render(heading string, paragraphs ...string) string {
	var buf bytes.Buffer
	// Executing a parsed template into a buffer only fails on bad data types.
	_ = layoutTmpl.Execute(&buf, emailBody{Heading: heading, Paragraphs: paragraphs})
	return buf.String()
}

func TeamRegistered(to, leaderName, teamName string) Message {
	return Message{
		RecipientAddress: to,
		Subject:          fmt.Sprintf("Team %s is registered", teamName),
		BodyHTML: render("You're in! 🚀",
			fmt.Sprintf("Hi %s, your team %s has been registered.", leaderName, teamName),
			"Upload your payment proof to complete the registration. We will email you once the team is reviewed."),
	}
}

func TeamStatusChanged(to, teamName, status string) Message {
	return Message{
		RecipientAddress: to,
		Subject:          fmt.Sprintf("Team %s: registration %s", teamName, status),
		BodyHTML: render("Registration update",
			fmt.Sprintf("Your team %s has been %s.", teamName, status)),
	}
}

func WorkshopRegistered(to, name, workshop string) Message {
	return Message{
		RecipientAddress: to,
		Subject:          fmt.Sprintf("You're registered for %s", workshop),
		BodyHTML: render("See you at the workshop!",
			fmt.Sprintf("Hi %s, your seat for %s is confirmed.", name, workshop)),
	}
}
