// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package draft

import (
	"strings"
	"text/template"

	"github.com/a9austin/sdr-sourcer/pkg/types"
)

// outreachPromptTmpl is the prompt sent to the Claude API for one candidate.
// It asks for the message body only so the response can be written straight
// into the AI Draft column.
var outreachPromptTmpl = template.Must(template.New("outreach").Parse(`You are a recruiter at a B2B software company hiring sales development representatives and account executives in Utah. Write a short, personalized LinkedIn outreach message to the candidate below.

Requirements:
- 3 to 4 sentences, under 90 words
- reference something specific from their headline
- mention we are hiring for {{.Role}} roles
- warm and direct, no buzzwords, no exclamation points
- end by asking if they are open to a quick chat this week

Respond with the message text only. Do not include a subject line, a greeting placeholder, or any commentary.

Candidate:
- name: {{.Name}}
- headline: {{.Headline}}
{{- if .Snippet}}
- search snippet: {{.Snippet}}
{{- end}}
`))

type promptData struct {
	Name     string
	Headline string
	Snippet  string
	Role     string
}

// Prompt renders the outreach prompt for a candidate.
func Prompt(c *types.Candidate) string {
	role := "SDR and AE"
	switch c.RoleFit {
	case types.RoleSDR:
		role = "SDR"
	case types.RoleAE:
		role = "AE"
	}

	var b strings.Builder
	outreachPromptTmpl.Execute(&b, promptData{
		Name:     c.FullName,
		Headline: c.Headline,
		Snippet:  c.Snippet,
		Role:     role,
	})
	return b.String()
}
