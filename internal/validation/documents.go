package validation

import (
	"strings"

	"github.com/mbdb/rlbp-gissmo-check/models"
)

// requiredDoctypes are the document categories every station file must
// contain, reported in this order when missing.
var requiredDoctypes = []string{
	"Lease",
	"Datasheet",
	"Picture",
	"Analysis report",
	"Site proposal",
}

// siteProposalLinkMarker identifies a site-proposal file attached under
// another doctype; an "Analysis report" whose link carries it also
// satisfies the "Site proposal" requirement.
const siteProposalLinkMarker = "dossier_proposition_site_"

// CheckDocuments lists the documents attached to the station and reports
// every required doctype that never appears.
func (c *Checker) CheckDocuments(docs []models.Document) {
	if len(docs) == 0 {
		c.rep.Errorf("no document related to this station")
		return
	}

	found := make(map[string]bool)

	c.rep.Printf("Documents:")
	for _, d := range docs {
		c.rep.Printf("    %s '%s' available at %s", d.Doctype, d.Title, d.Link)
		found[d.Doctype] = true
		if d.Doctype == "Analysis report" && strings.Contains(d.Link, siteProposalLinkMarker) {
			found["Site proposal"] = true
		}
	}

	for _, required := range requiredDoctypes {
		if !found[required] {
			c.rep.Errorf("no %s related to this station", required)
		}
	}
}
