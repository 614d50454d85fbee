package i18n

// catalog holds every user-facing string of the search form per locale.
// Messages use universal-translator placeholders ({0}).
var catalog = map[string]map[string]string{
	LocaleEnglish: {
		"label.topics":           "Topics",
		"label.language":         "Language",
		"label.category":         "Category",
		"label.product":          "Relevant to",
		"label.include_archived": "Include obsolete articles?",
		"label.sortby":           "Sort results by",
		"label.created":          "Created",
		"label.updated":          "Last updated",
		"label.thread_type":      "Thread type",
		"label.forum":            "Search in forum",
		"label.is_locked":        "Locked",
		"label.is_solved":        "Solved",
		"label.has_answers":      "Has answers",
		"label.has_helpful":      "Has helpful answers",
		"label.num_voted":        "Votes",
		"label.q_tags":           "Tags",

		"placeholder.username": "username",
		"placeholder.tags":     "tag1, tag2",

		"choice.filter.none":                "Don't filter",
		"choice.date.before":                "Before",
		"choice.date.after":                 "After",
		"choice.ternary.yes":                "Yes",
		"choice.ternary.no":                 "No",
		"choice.number.more":                "More than",
		"choice.number.less":                "Less than",
		"choice.sort.relevance":             "Relevance",
		"choice.sort.last_post":             "Last post date",
		"choice.sort.original_post":         "Original post date",
		"choice.sort.replies":               "Number of replies",
		"choice.sort.last_answer":           "Last answer date",
		"choice.sort.question_date":         "Question date",
		"choice.sort.answers":               "Number of answers",
		"choice.sort.helpful":               "Helpful votes",
		"choice.status.sticky":              "Sticky",
		"choice.status.locked":              "Locked",
		"choice.category.troubleshooting":   "Troubleshooting",
		"choice.category.how_to":            "How to",
		"choice.category.how_to_contribute": "How to contribute",
		"choice.category.administration":    "Administration",
		"choice.category.navigation":        "Navigation",
		"choice.category.templates":         "Templates",

		"error.invalid_choice":  "Select a valid choice. {0} is not one of the available choices.",
		"error.invalid_integer": "Enter a whole number.",
		"error.basic_query":     "Basic search requires a query string.",
	},
	LocaleSpanish: {
		"label.topics":           "Temas",
		"label.language":         "Idioma",
		"label.category":         "Categoría",
		"label.product":          "Relevante para",
		"label.include_archived": "¿Incluir artículos obsoletos?",
		"label.sortby":           "Ordenar resultados por",
		"label.created":          "Creado",
		"label.updated":          "Última actualización",
		"label.thread_type":      "Tipo de hilo",
		"label.forum":            "Buscar en el foro",
		"label.is_locked":        "Bloqueado",
		"label.is_solved":        "Resuelto",
		"label.has_answers":      "Tiene respuestas",
		"label.has_helpful":      "Tiene respuestas útiles",
		"label.num_voted":        "Votos",
		"label.q_tags":           "Etiquetas",

		"placeholder.username": "nombre de usuario",
		"placeholder.tags":     "etiqueta1, etiqueta2",

		"choice.filter.none":                "No filtrar",
		"choice.date.before":                "Antes",
		"choice.date.after":                 "Después",
		"choice.ternary.yes":                "Sí",
		"choice.ternary.no":                 "No",
		"choice.number.more":                "Más de",
		"choice.number.less":                "Menos de",
		"choice.sort.relevance":             "Relevancia",
		"choice.sort.last_post":             "Fecha del último mensaje",
		"choice.sort.original_post":         "Fecha del mensaje original",
		"choice.sort.replies":               "Número de respuestas",
		"choice.sort.last_answer":           "Fecha de la última respuesta",
		"choice.sort.question_date":         "Fecha de la pregunta",
		"choice.sort.answers":               "Número de respuestas",
		"choice.sort.helpful":               "Votos útiles",
		"choice.status.sticky":              "Fijo",
		"choice.status.locked":              "Bloqueado",
		"choice.category.troubleshooting":   "Solución de problemas",
		"choice.category.how_to":            "Cómo",
		"choice.category.how_to_contribute": "Cómo colaborar",
		"choice.category.administration":    "Administración",
		"choice.category.navigation":        "Navegación",
		"choice.category.templates":         "Plantillas",

		"error.invalid_choice":  "Escoja una opción válida. {0} no es una de las opciones disponibles.",
		"error.invalid_integer": "Introduzca un número entero.",
		"error.basic_query":     "La búsqueda básica requiere una cadena de consulta.",
	},
	LocaleFrench: {
		"label.topics":           "Sujets",
		"label.language":         "Langue",
		"label.category":         "Catégorie",
		"label.product":          "Concerne",
		"label.include_archived": "Inclure les articles obsolètes ?",
		"label.sortby":           "Trier les résultats par",
		"label.created":          "Création",
		"label.updated":          "Dernière mise à jour",
		"label.thread_type":      "Type de fil",
		"label.forum":            "Rechercher dans le forum",
		"label.is_locked":        "Verrouillé",
		"label.is_solved":        "Résolu",
		"label.has_answers":      "A des réponses",
		"label.has_helpful":      "A des réponses utiles",
		"label.num_voted":        "Votes",
		"label.q_tags":           "Étiquettes",

		"placeholder.username": "nom d'utilisateur",
		"placeholder.tags":     "étiquette1, étiquette2",

		"choice.filter.none":                "Ne pas filtrer",
		"choice.date.before":                "Avant",
		"choice.date.after":                 "Après",
		"choice.ternary.yes":                "Oui",
		"choice.ternary.no":                 "Non",
		"choice.number.more":                "Plus de",
		"choice.number.less":                "Moins de",
		"choice.sort.relevance":             "Pertinence",
		"choice.sort.last_post":             "Date du dernier message",
		"choice.sort.original_post":         "Date du message d'origine",
		"choice.sort.replies":               "Nombre de réponses",
		"choice.sort.last_answer":           "Date de la dernière réponse",
		"choice.sort.question_date":         "Date de la question",
		"choice.sort.answers":               "Nombre de réponses",
		"choice.sort.helpful":               "Votes utiles",
		"choice.status.sticky":              "Épinglé",
		"choice.status.locked":              "Verrouillé",
		"choice.category.troubleshooting":   "Dépannage",
		"choice.category.how_to":            "Comment faire",
		"choice.category.how_to_contribute": "Comment contribuer",
		"choice.category.administration":    "Administration",
		"choice.category.navigation":        "Navigation",
		"choice.category.templates":         "Modèles",

		"error.invalid_choice":  "Sélectionnez un choix valide. {0} n'en fait pas partie.",
		"error.invalid_integer": "Saisissez un nombre entier.",
		"error.basic_query":     "La recherche simple nécessite une requête.",
	},
}
