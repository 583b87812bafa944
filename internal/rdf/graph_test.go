package rdf_test

import (
	"strings"
	"testing"

	"github.com/perugo/perugo-api/internal/domain"
	"github.com/perugo/perugo-api/internal/rdf"
)

func sampleDestination() domain.Destination {
	return domain.Destination{
		ID:          1,
		Slug:        "machu-picchu",
		Name:        "Machu Picchu",
		Location:    "Cusco",
		Type:        "arqueológico",
		Price:       1250,
		Duration:    "4 días",
		Description: "Ciudadela inca",
		Tours: []domain.Tour{
			{Name: "Camino Inca clásico", Price: 650, Duration: "4 días"},
		},
	}
}

func TestGraph_EmitsUserAndDestinationTriples(t *testing.T) {
	doc := rdf.Graph("Ana", []domain.Destination{sampleDestination()})

	wantTriples := []string{
		"@prefix ex: <https://www.perugo/> .",
		"<https://www.perugo/Usuario#Ana> rdf:type foaf:Person .",
		`<https://www.perugo/Usuario#Ana> foaf:nick "Ana" .`,
		"<https://www.perugo/Destino#machu-picchu> rdf:type ex:Destino .",
		`<https://www.perugo/Destino#machu-picchu> rdfs:label "Machu Picchu" .`,
		`<https://www.perugo/Destino#machu-picchu> ex:ubicacion "Cusco" .`,
		"<https://www.perugo/Destino#machu-picchu> ex:precio 1250 .",
		"<https://www.perugo/Usuario#Ana> ex:mostro_interes_en <https://www.perugo/Destino#machu-picchu> .",
		`rdfs:label "Camino Inca clásico" .`,
		"ex:priceUSD 650 .",
		"<https://www.perugo/Destino#machu-picchu> ex:ofrece",
	}

	for _, want := range wantTriples {
		if !strings.Contains(doc, want) {
			t.Fatalf("Expected graph to contain %q, got:\n%s", want, doc)
		}
	}
}

func TestGraph_EmptyCatalogStillHasUserNode(t *testing.T) {
	doc := rdf.Graph("Usuario123", nil)

	if !strings.Contains(doc, "<https://www.perugo/Usuario#Usuario123> rdf:type foaf:Person .") {
		t.Fatalf("Expected user node in empty graph, got:\n%s", doc)
	}
	if strings.Contains(doc, "ex:Destino") {
		t.Fatalf("Expected no destination triples, got:\n%s", doc)
	}
}

func TestGraph_EscapesLiteralsAndFragments(t *testing.T) {
	d := sampleDestination()
	d.Slug = "valle sagrado"
	d.Description = "línea 1\nlínea \"dos\""

	doc := rdf.Graph("Ana", []domain.Destination{d})

	if !strings.Contains(doc, "<https://www.perugo/Destino#valle%20sagrado>") {
		t.Fatalf("Expected escaped IRI fragment, got:\n%s", doc)
	}
	if !strings.Contains(doc, `ex:descripcion "línea 1\nlínea \"dos\"" .`) {
		t.Fatalf("Expected escaped literal, got:\n%s", doc)
	}
	if strings.Contains(doc, "\"dos\"\"") {
		t.Fatalf("Found unescaped quote in literal:\n%s", doc)
	}
}

func TestGraph_TourNamesUseUnderscoreFragments(t *testing.T) {
	doc := rdf.Graph("Ana", []domain.Destination{sampleDestination()})

	if !strings.Contains(doc, "<https://www.perugo/Tour#Camino_Inca_cl") {
		t.Fatalf("Expected underscored tour fragment, got:\n%s", doc)
	}
}
