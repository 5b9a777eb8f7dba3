package scout

import (
	"fmt"
	"strings"
)

// OutreachTemplate is a canned proposal with {name} and {sender}
// placeholders, substituted with the channel and marketer names.
type OutreachTemplate struct {
	Subject string
	Body    string // HTML
}

// Built-in outreach templates, keyed by the name the tool input uses.
var outreachTemplates = map[string]OutreachTemplate{
	"brand-collab": {
		Subject: "[{sender} X {name}] Brand collaboration proposal",
		Body: `Hello {name}!<br>
This is {sender} from the content business team.<br><br>

We have been following your channel and enjoy your content.<br>
We are reaching out with a brand advertising proposal we believe fits your audience.<br>
<hr>
To discuss terms, we would like to ask about your rates for:<br><br>

<b>&#9312; Branded video</b><br>
<b>&#9313; Product placement</b><br>
<b>&#9314; Shorts / reels ad</b><br>
<b>&#9315; Available dates</b><br><br>

Please feel free to reply with any questions.<br><br>

Best regards,<br>
{sender}`,
	},
	"product-seeding": {
		Subject: "[{sender} X {name}] Product partnership inquiry",
		Body: `Hello {name} team!<br>
This is {sender} from the content business team.<br><br>

We would like to propose a product partnership: we send the product first,
you try it, and we discuss a fit for your content.<br>
<hr>
Proposed structures:<br>
1. Flat fee<br>
2. Fee + revenue share (higher upside via commission)<br>
<hr>
We would appreciate your rates for:<br><br>

<b>&#9312; Branded video</b><br>
<b>&#9313; Product placement</b><br>
<b>&#9314; Shorts / reels ad</b><br>
<b>&#9315; Revenue-share availability</b><br>
<b>&#9316; Available dates</b><br><br>

Happy to answer anything — just reply to this email.<br><br>

Best regards,<br>
{sender}`,
	},
}

// TemplateNames lists the built-in template keys.
func TemplateNames() []string {
	names := make([]string, 0, len(outreachTemplates))
	for k := range outreachTemplates {
		names = append(names, k)
	}
	return names
}

// RenderTemplate substitutes channel and sender names into a built-in
// template. Unknown names are an error so typos don't silently send the
// wrong pitch.
func RenderTemplate(name, channelName, senderName string) (subject, body string, err error) {
	tpl, ok := outreachTemplates[name]
	if !ok {
		return "", "", fmt.Errorf("template: unknown name %q (have: %s)", name, strings.Join(TemplateNames(), ", "))
	}
	r := strings.NewReplacer("{name}", channelName, "{sender}", senderName)
	return r.Replace(tpl.Subject), r.Replace(tpl.Body), nil
}
