package accounts

// defaultChart is the chart of accounts for the LMNP réel regime,
// keyed by account code.
var defaultChart = map[string]string{
	// Classe 1 : capitaux
	"101000": "Capital",
	"108000": "Compte de l'exploitant",
	"164000": "Emprunts auprès des établissements de crédit",

	// Classe 2 : immobilisations
	"211000": "Terrains",
	"212000": "Agencements et aménagements de terrains",
	"213000": "Constructions (Murs)",
	"218100": "Installations générales (Cuisine, SDB)",
	"218300": "Matériel de bureau et informatique",
	"218400": "Mobilier (> 500€)",

	// Amortissements (crédit)
	"281200": "Amortissements des agencements",
	"281300": "Amortissements des constructions",
	"281840": "Amortissements du mobilier",

	// Classe 4 : tiers
	"401000": "Fournisseurs",
	"411000": "Clients (Locataires)",
	"445000": "État - TVA",
	"447000": "Autres impôts, taxes",

	// Classe 5 : trésorerie
	"512000": "Banque",
	"530000": "Caisse",

	// Classe 6 : charges
	"606100": "Eau, Électricité, Gaz, Chauffage",
	"606300": "Petit équipement et maintenance < 500€",
	"611000": "Sous-traitance (Ménage, Conciergerie)",
	"614000": "Charges locatives de copropriété",
	"615000": "Entretien et réparations",
	"616000": "Primes d'assurances (PNO, GLI)",
	"622600": "Honoraires (Comptable, CGA, Agence)",
	"626000": "Frais postaux et télécoms",
	"627000": "Services bancaires",
	"635000": "Impôts et taxes (Taxe Foncière, CFE)",
	"661000": "Intérêts d'emprunt",
	"681100": "Dotations aux amortissements",

	// Classe 7 : produits
	"706000": "Prestations de services (Loyers)",
}

// defaultJournals maps the allowed journal codes to their labels.
// "AN" is the opening journal: a point-in-time snapshot, excluded from
// period balance aggregation.
var defaultJournals = map[string]string{
	"AN": "A-Nouveaux (Bilan d'ouverture)",
	"BQ": "Banque (Mouvements financiers)",
	"AC": "Achats (Factures fournisseurs)",
	"VT": "Ventes (Quittances de loyer)",
	"OD": "Opérations Diverses (Amortissements, régularisations)",
}
