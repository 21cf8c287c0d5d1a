package fiscal

import (
	"fmt"
	"strings"

	"github.com/lmnp-dev/lmnp/internal/money"
)

// Report building blocks: a Document holds Forms, a Form holds
// Sections, a Section holds boxes and info lines. Boxes with a value of
// exactly zero render as nothing, keeping the printed form sparse.
// Amounts stay cent-exact until this rendering step; box values are
// rounded to whole euros here and nowhere else.

// Box is one labeled numeric cell of a tax form.
type Box struct {
	Code  string
	Label string
	Value money.Amount
}

func (b Box) String() string {
	if b.Value.IsZero() {
		return ""
	}
	euros := b.Value.Decimal().Round(0).String()
	return fmt.Sprintf(" %-4s | %-45s : %10s €", b.Code, b.Label, euros)
}

// Info is a supporting line rendered with full cent precision.
type Info struct {
	Label   string
	Value   money.Amount
	Comment string
}

func (i Info) String() string {
	s := fmt.Sprintf("   %s : %10s €", padDots(i.Label, 33), i.Value.String())
	if i.Comment != "" {
		s += " " + i.Comment
	}
	return s
}

// Text is a free-form remark line.
type Text struct {
	Body string
}

func (t Text) String() string {
	return "       " + t.Body
}

// Section groups lines under an optional title.
type Section struct {
	Title string
	Items []fmt.Stringer
}

// AddBox appends a numeric box.
func (s *Section) AddBox(code, label string, value money.Amount) {
	s.Items = append(s.Items, Box{Code: code, Label: label, Value: value})
}

// AddInfo appends a cent-precise info line.
func (s *Section) AddInfo(label string, value money.Amount, comment string) {
	s.Items = append(s.Items, Info{Label: label, Value: value, Comment: comment})
}

// AddText appends a remark.
func (s *Section) AddText(body string) {
	s.Items = append(s.Items, Text{Body: body})
}

func (s *Section) String() string {
	var lines []string
	if s.Title != "" {
		lines = append(lines, "", s.Title+" :")
	}
	for _, item := range s.Items {
		if str := item.String(); str != "" {
			lines = append(lines, str)
		}
	}
	return strings.Join(lines, "\n")
}

// Form is one named tax form of the filing.
type Form struct {
	Title    string
	Sections []*Section
}

// AddSection appends and returns a new section.
func (f *Form) AddSection(title string) *Section {
	s := &Section{Title: title}
	f.Sections = append(f.Sections, s)
	return s
}

func (f *Form) String() string {
	var b strings.Builder
	b.WriteString("\n\n" + f.Title + "\n")
	b.WriteString(strings.Repeat("-", 59))
	for _, s := range f.Sections {
		b.WriteString(s.String())
	}
	return b.String()
}

// Document is the whole printable filing.
type Document struct {
	Title string
	Forms []*Form
}

// AddForm appends and returns a new form.
func (d *Document) AddForm(title string) *Form {
	f := &Form{Title: title}
	d.Forms = append(d.Forms, f)
	return f
}

func (d *Document) String() string {
	rule := strings.Repeat("=", 59)
	var b strings.Builder
	b.WriteString("\n" + rule + "\n")
	b.WriteString("       " + d.Title + "\n")
	b.WriteString(rule)
	for _, f := range d.Forms {
		b.WriteString(f.String())
	}
	b.WriteString("\n" + rule + "\n")
	return b.String()
}

// Report assembles the filing document for the analyzed year: the
// simplified balance sheet, the result computation, and both
// carry-forward walks.
func (a *Analyzer) Report() *Document {
	analysis := a.Analyze()
	r := a.rules

	opening := NewOpeningBalance(a.register, a.year)
	grossAssets := opening.GrossValue().Add(r.GrossAssets())
	accumulated := opening.CumulativeDepreciation().Add(r.Depreciation())
	netAssets := grossAssets.Sub(accumulated)
	receivables, payables := a.balances.SplitPrefix("4")
	// Supplier debts get their own box; keep the rest out of "Autres dettes".
	otherPayables := money.Max(payables.Sub(a.rules.SupplierDebts()), money.Zero())
	capital := opening.Capital().Add(r.Capital())

	doc := &Document{Title: fmt.Sprintf("LIASSE FISCALE %d (Régime réel simplifié)", a.year)}

	bilan := doc.AddForm("2033-A — Bilan simplifié")
	actif := bilan.AddSection("Actif")
	actif.AddBox("014", "Immobilisations brutes", grossAssets)
	actif.AddBox("016", "Amortissements cumulés", accumulated)
	actif.AddBox("028", "Immobilisations nettes", netAssets)
	actif.AddBox("084", "Créances et comptes rattachés", receivables)
	actif.AddBox("072", "Disponibilités", r.Treasury())
	passif := bilan.AddSection("Passif")
	passif.AddBox("120", "Capital et compte de l'exploitant", capital)
	passif.AddBox("156", "Emprunts et dettes assimilées", r.Loans())
	passif.AddBox("164", "Fournisseurs et comptes rattachés", r.SupplierDebts())
	passif.AddBox("166", "Autres dettes", otherPayables)

	resultat := doc.AddForm("2033-B — Compte de résultat simplifié")
	exploitation := resultat.AddSection("Résultat comptable")
	exploitation.AddBox("218", "Recettes d'exploitation", r.Revenue())
	exploitation.AddBox("234", "Charges d'exploitation", r.OperatingExpenses())
	exploitation.AddBox("294", "Charges financières", r.FinancialExpenses())
	exploitation.AddBox("254", "Dotations aux amortissements", analysis.TotalDepreciation)
	exploitation.AddBox("310", "Résultat comptable", a.BookResult())
	fisc := resultat.AddSection("Résultat fiscal")
	fisc.AddInfo("Résultat avant amortissements", analysis.ResultBeforeDepreciation, "")
	fisc.AddInfo("Amortissements déductibles", analysis.DeductibleDepreciation, "")
	fisc.AddBox("352", "Résultat fiscal imposable", analysis.TaxableResult)
	if analysis.TaxableResult.IsZero() {
		fisc.AddText("Résultat fiscal nul : rien à imposer cette année.")
	}

	stocks := doc.AddForm("Suivi des amortissements différés et déficits")
	ard := stocks.AddSection("Amortissements réputés différés")
	ard.AddInfo("Stock début d'exercice", analysis.Opening.Depreciation, "")
	ard.AddInfo("Créés sur l'exercice", analysis.DepreciationCreated, "")
	ard.AddInfo("Imputés sur l'exercice", analysis.DepreciationUsed, "")
	ard.AddInfo("Stock fin d'exercice", analysis.Closing.Depreciation, "(reporté)")
	deficits := stocks.AddSection("Déficits reportables")
	deficits.AddInfo("Stock début d'exercice", analysis.Opening.Deficit, "")
	deficits.AddInfo("Créés sur l'exercice", analysis.DeficitCreated, "")
	deficits.AddInfo("Imputés sur l'exercice", analysis.DeficitUsed, "")
	deficits.AddInfo("Stock fin d'exercice", analysis.Closing.Deficit, "(reporté)")

	return doc
}

func padDots(s string, width int) string {
	if len([]rune(s)) >= width {
		return s
	}
	return s + " " + strings.Repeat(".", width-len([]rune(s))-1)
}
