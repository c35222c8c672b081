package french

// words builds a lookup set.
func words(list ...string) map[string]bool {
	m := make(map[string]bool, len(list))
	for _, w := range list {
		m[w] = true
	}
	return m
}

// stopWords is a French stop list close to common NLP toolkits.
var stopWords = words(
	"a", "à", "afin", "ai", "aie", "aient", "aies", "ait", "alors", "as", "au", "aucun", "aucune",
	"auquel", "aura", "aurai", "auraient", "aurais", "aurait", "auras", "aurez", "auriez", "aurions",
	"aurons", "auront", "aussi", "autre", "autres", "aux", "auxquels", "auxquelles", "avaient", "avais",
	"avait", "avant", "avec", "avez", "aviez", "avions", "avoir", "avons", "ayant", "bien", "c", "c'",
	"ce", "ceci", "cela", "celle", "celles", "celui", "cependant", "certain", "certaine", "certains",
	"ces", "cet", "cette", "ceux", "chacun", "chacune", "chaque", "chez", "ci", "comme", "comment",
	"d", "d'", "dans", "de", "depuis", "des", "desquels", "desquelles", "deux", "donc", "dont", "du",
	"duquel", "durant", "elle", "elles", "en", "encore", "entre", "es", "est", "et", "étaient",
	"étais", "était", "étant", "été", "être", "eu", "eux", "fait", "faites", "fois", "font", "hors",
	"ici", "il", "ils", "j", "j'", "je", "jusqu", "jusqu'", "l", "l'", "la", "là", "le", "lequel",
	"les", "lesquels", "lesquelles", "leur", "leurs", "lors", "lorsque", "lorsqu", "lorsqu'", "lui",
	"m", "m'", "ma", "mais", "me", "même", "mêmes", "mes", "moi", "moins", "mon", "n", "n'", "ne",
	"ni", "nos", "notre", "nous", "on", "ont", "ou", "où", "par", "parce", "pas", "pendant", "peu",
	"plus", "plusieurs", "pour", "pourquoi", "puis", "qu", "qu'", "quand", "que", "quel", "quelle",
	"quelles", "quels", "qui", "quoi", "s", "s'", "sa", "sans", "se", "selon", "sera", "serai",
	"seraient", "serait", "seront", "ses", "si", "sien", "sienne", "soi", "soit", "sommes", "son",
	"sont", "sous", "suis", "sur", "t", "t'", "ta", "tandis", "te", "tes", "toi", "ton", "tous",
	"tout", "toute", "toutes", "très", "tu", "un", "une", "unes", "uns", "vers", "via", "voici",
	"voilà", "vos", "votre", "vous", "y",
)

var determiners = words(
	"le", "la", "les", "l'", "un", "une", "des", "du", "au", "aux", "ce", "cet", "cette", "ces",
	"mon", "ma", "mes", "ton", "ta", "tes", "son", "sa", "ses", "notre", "nos", "votre", "vos",
	"leur", "leurs", "chaque", "tout", "toute", "tous", "toutes", "aucun", "aucune", "quelque",
	"quelques", "plusieurs", "certains", "certaines", "d'",
)

var adpositions = words(
	"à", "de", "dans", "par", "pour", "sur", "sous", "avec", "sans", "chez", "entre", "vers",
	"depuis", "pendant", "avant", "après", "selon", "contre", "durant", "dès", "hors", "parmi",
	"via", "auprès", "jusqu'", "lors", "malgré", "envers", "en",
)

var coordinators = words("et", "ou", "mais", "donc", "or", "ni", "car")

var subordinators = words(
	"que", "qu'", "si", "s'", "lorsque", "lorsqu'", "quand", "comme", "puisque", "puisqu'",
	"quoique", "bien", "afin",
)

var pronouns = words(
	"je", "j'", "tu", "il", "elle", "on", "nous", "vous", "ils", "elles", "me", "m'", "te", "t'",
	"se", "lui", "leur", "eux", "moi", "toi", "soi", "y", "qui", "quoi", "dont", "où", "lequel",
	"laquelle", "lesquels", "lesquelles", "celui", "celle", "ceux", "celles", "ceci", "cela",
	"ça", "c'", "chacun", "chacune", "personne", "rien",
)

var adverbs = words(
	"ne", "n'", "pas", "plus", "jamais", "toujours", "alors", "aussi", "très", "bien", "mal",
	"déjà", "encore", "ensuite", "puis", "seulement", "également", "immédiatement", "notamment",
	"obligatoirement", "automatiquement", "systématiquement", "ici", "là",
)

// auxiliaries maps auxiliary and modal forms to their lemma.
var auxiliaries = map[string]string{
	"est": "être", "sont": "être", "sera": "être", "seront": "être", "soit": "être",
	"soient": "être", "était": "être", "étaient": "être", "serait": "être", "seraient": "être",
	"être": "être", "été": "être", "étant": "être",
	"a": "avoir", "ont": "avoir", "aura": "avoir", "auront": "avoir", "ait": "avoir",
	"avait": "avoir", "avaient": "avoir", "aurait": "avoir", "avoir": "avoir", "ayant": "avoir",
	"doit": "devoir", "doivent": "devoir", "devra": "devoir", "devront": "devoir",
	"devrait": "devoir", "devraient": "devoir", "dû": "devoir",
	"peut": "pouvoir", "peuvent": "pouvoir", "pourra": "pouvoir", "pourront": "pouvoir",
	"pourrait": "pouvoir", "pourraient": "pouvoir", "puisse": "pouvoir",
}

// conjugated maps frequent conjugated lexical verbs to their lemma.
var conjugated = map[string]string{
	"entraîne": "entraîner", "entraînent": "entraîner", "provoque": "provoquer",
	"implique": "impliquer", "nécessite": "nécessiter", "permet": "permettre",
	"permettent": "permettre", "garantit": "garantir", "reçoit": "recevoir",
	"fournit": "fournir", "transmet": "transmettre", "paie": "payer", "paye": "payer",
	"respecte": "respecter", "dépasse": "dépasser", "refuse": "refuser",
	"accepte": "accepter", "génère": "générer", "envoie": "envoyer",
	"applique": "appliquer", "déclenche": "déclencher", "bloque": "bloquer",
	"suspend": "suspendre", "autorise": "autoriser", "interdit": "interdire",
	"résulte": "résulter", "fait": "faire", "font": "faire", "va": "aller", "vont": "aller",
}

// infinitivesRE are irregular infinitives ending in -re or -oir.
var infinitivesRE = words(
	"prendre", "rendre", "vendre", "attendre", "entendre", "répondre", "suspendre", "comprendre",
	"apprendre", "reprendre", "défendre", "dépendre", "descendre", "étendre", "perdre", "mettre",
	"permettre", "transmettre", "soumettre", "remettre", "admettre", "omettre", "promettre",
	"émettre", "faire", "dire", "lire", "écrire", "inscrire", "décrire", "prescrire", "conduire",
	"produire", "réduire", "traduire", "construire", "détruire", "introduire", "inclure",
	"conclure", "exclure", "suivre", "poursuivre", "vivre", "croire", "connaître", "reconnaître",
	"paraître", "apparaître", "disparaître", "rompre", "interrompre", "convaincre", "résoudre",
	"joindre", "rejoindre", "craindre", "atteindre", "éteindre", "restreindre", "contraindre",
	"extraire", "soustraire", "battre", "débattre", "voir", "prévoir", "revoir", "recevoir",
	"percevoir", "concevoir", "apercevoir", "valoir", "falloir", "savoir", "vouloir", "mouvoir",
	"émouvoir", "promouvoir", "asseoir", "surseoir", "pourvoir",
)

// notVerbs are nouns and adjectives whose endings look like infinitives.
var notVerbs = words(
	"dossier", "fichier", "papier", "premier", "première", "dernier", "calendrier", "courrier",
	"panier", "métier", "quartier", "chantier", "cahier", "hier", "escalier", "atelier", "clavier",
	"casier", "acier", "foyer", "loyer", "mer", "fer", "hiver", "cancer", "laser", "super",
	"poster", "boucher", "banquier", "caissier", "fournisseur", "particulier", "régulier",
	"entier", "financier", "immobilier", "bancaire", "trimestre", "semestre", "registre",
	"avenir", "plaisir", "loisir", "désir", "souvenir", "saphir", "soir", "espoir", "miroir",
	"tiroir", "couloir", "comptoir", "rasoir", "mouchoir", "réservoir", "dortoir", "pouvoir",
	"devoir", "manager", "leader", "user", "sweater", "danger", "déjeuner", "dîner", "léger",
	"étranger", "cher", "fier", "amer", "ver", "hier",
)

// invariablePlurals end in s or x in the singular.
var invariablePlurals = words(
	"pas", "plus", "très", "sous", "dans", "fois", "corps", "prix", "choix", "taux", "temps",
	"processus", "cas", "accès", "succès", "procès", "français", "mois", "avis", "bras", "poids",
	"voix", "paix", "croix", "dos", "gaz", "jus", "souris", "tous", "sans", "vers", "lors",
	"alors", "ailleurs", "depuis", "parfois", "toujours", "jamais", "après", "dès", "auprès",
	"heureux", "sérieux", "nombreux", "précieux", "index", "fax", "box", "virus",
	"bus", "bonus", "campus", "consensus", "refus", "recours", "cours", "concours",
	"discours", "parcours", "secours",
)

// irregularPlurals maps -aux plurals whose singular is not -al.
var irregularPlurals = map[string]string{
	"travaux": "travail", "baux": "bail", "vitraux": "vitrail", "coraux": "corail",
	"émaux": "émail", "soupiraux": "soupirail", "yeux": "œil", "cieux": "ciel",
}
