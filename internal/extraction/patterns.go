package extraction

// Pattern is a named trigger-phrase regular expression.
type Pattern struct {
	// Name identifies the pattern in logs.
	Name string

	// Regex is compiled case-insensitively.
	Regex string
}

// DefaultRulePatterns returns the rule triggers in evaluation order.
func DefaultRulePatterns() []Pattern {
	return []Pattern{
		{
			Name:  "condition",
			Regex: `(Si|Lorsqu['’]|Quand|Dès que|En cas de).*?(alors|doit|devra|est tenu de|nécessite|implique|entraîne|peut).*?\.`,
		},
		{
			Name:  "obligation",
			Regex: `(Tout utilisateur|L['’][a-zA-Z]+|Un client|Le système|Une demande).*?(doit|est tenu de|devra|ne peut pas|ne doit pas|est interdit de).*?\.`,
		},
		{
			Name:  "consequence",
			Regex: `(Le non-respect|Toute infraction|Une violation).*?(entraîne|provoque|peut entraîner|résulte en|sera soumis à).*?\.`,
		},
		{
			Name:  "permission",
			Regex: `(L['’]utilisateur|Le client|Le prestataire|L['’]agent|Le système).*?(est autorisé à|peut|a le droit de).*?\.`,
		},
	}
}

// DefaultControlPointPatterns returns the verification-action triggers.
func DefaultControlPointPatterns() []Pattern {
	return []Pattern{
		{
			Name:  "verification",
			Regex: `(Vérifier|S['’]assurer|Contrôler|Vérification|Point de contrôle)\b.*?[.;]`,
		},
		{
			Name:  "requirement",
			Regex: `(Le système doit|Il faut|Il est nécessaire de).*?(vérifier|contrôler|s['’]assurer)`,
		},
	}
}

// DefaultRuleKeywords are the lowercase markers that make a sentence a
// rule candidate for the sentence-level heuristic.
func DefaultRuleKeywords() []string {
	return []string{
		"si ", "alors", "doit", "est tenu de", "ne peut pas",
		"entraîne", "provoque", "peut entraîner", "doit être",
		"est obligatoire", "a le droit de", "est autorisé à",
	}
}
