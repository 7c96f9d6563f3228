package preview

import "github.com/microcosm-cc/bluemonday"

// certificatePolicy allows only the markup the certificate template emits.
// Record values are escaped by the template engine; the policy is a second
// gate in case a custom template inserts them raw.
func certificatePolicy() *bluemonday.Policy {
	p := bluemonday.StrictPolicy()
	p.AllowElements("div", "header", "section", "footer", "p", "h1", "h2", "span", "strong", "br")
	p.AllowAttrs("class").Globally()
	p.AllowImages()
	p.AllowDataURIImages()
	return p
}
