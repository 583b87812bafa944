// Package rdf serializes the destination/tour graph as Turtle. The
// vocabulary is the PerúGo namespace: destinations are ex:Destino nodes the
// requesting user "mostró interés en", each offering its ex:Tour nodes.
package rdf

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/perugo/perugo-api/internal/domain"
)

const (
	nsEx   = "https://www.perugo/"
	nsFoaf = "http://xmlns.com/foaf/0.1/"
	nsRdf  = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	nsRdfs = "http://www.w3.org/2000/01/rdf-schema#"
)

// Graph renders the catalog rows as a Turtle document anchored on the named
// user. An empty destination slice still yields a valid graph with just the
// user node.
func Graph(usuario string, destinations []domain.Destination) string {
	var b strings.Builder

	b.WriteString("@prefix ex: <" + nsEx + "> .\n")
	b.WriteString("@prefix foaf: <" + nsFoaf + "> .\n")
	b.WriteString("@prefix rdf: <" + nsRdf + "> .\n")
	b.WriteString("@prefix rdfs: <" + nsRdfs + "> .\n\n")

	userURI := iri("Usuario", usuario)
	triple(&b, userURI, "rdf:type", "foaf:Person")
	triple(&b, userURI, "foaf:nick", literal(usuario))

	for _, d := range destinations {
		destURI := iri("Destino", d.Slug)

		triple(&b, destURI, "rdf:type", "ex:Destino")
		triple(&b, destURI, "rdfs:label", literal(d.Name))
		triple(&b, destURI, "ex:ubicacion", literal(d.Location))
		triple(&b, destURI, "ex:tipo", literal(d.Type))
		triple(&b, destURI, "ex:precio", number(d.Price))
		triple(&b, destURI, "ex:duracion", literal(d.Duration))
		triple(&b, destURI, "ex:descripcion", literal(d.Description))
		triple(&b, userURI, "ex:mostro_interes_en", destURI)

		for _, t := range d.Tours {
			tourURI := iri("Tour", strings.ReplaceAll(t.Name, " ", "_"))

			triple(&b, tourURI, "rdf:type", "ex:Tour")
			triple(&b, tourURI, "rdfs:label", literal(t.Name))
			triple(&b, tourURI, "ex:priceUSD", number(t.Price))
			triple(&b, destURI, "ex:ofrece", tourURI)
		}
	}

	return b.String()
}

func triple(b *strings.Builder, s, p, o string) {
	b.WriteString(s)
	b.WriteString(" ")
	b.WriteString(p)
	b.WriteString(" ")
	b.WriteString(o)
	b.WriteString(" .\n")
}

func iri(kind, fragment string) string {
	return "<" + nsEx + kind + "#" + url.PathEscape(fragment) + ">"
}

func literal(s string) string {
	r := strings.NewReplacer(
		`\`, `\\`,
		`"`, `\"`,
		"\n", `\n`,
		"\r", `\r`,
		"\t", `\t`,
	)
	return `"` + r.Replace(s) + `"`
}

func number(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
