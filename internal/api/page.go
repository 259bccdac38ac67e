package api

import (
	_ "embed"
	"html/template"
	"net/http"
)

//go:embed templates/index.html
var indexHTML string

var pageTemplate = template.Must(template.New("index").Parse(indexHTML))

// pageData feeds the self-check page template. Diagnosis and
// ValidationError are mutually exclusive; the raw field values are echoed
// back so the patient does not retype them after a validation failure.
type pageData struct {
	Diagnosis       string
	ValidationError string
	BloodPressure   string
	Weight          string
	Symptoms        string
}

func renderPage(w http.ResponseWriter, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, data); err != nil {
		http.Error(w, "failed to render page", http.StatusInternalServerError)
	}
}
