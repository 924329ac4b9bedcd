package catalog

import (
	"quizmaster/models"
)

// Languages is the quiz catalog. Every level's static pool carries at
// least QuizLength questions so the generation fallback can always
// satisfy a request.
var Languages = []models.Language{
	{
		Name:        "English",
		Code:        "EN",
		Flag:        "https://flagcdn.com/w320/gb.png",
		Description: "The global lingua franca, used in international business, science, and media.",
		Levels: []models.Level{
			{
				Name:       "A1 - Beginner",
				Difficulty: models.DifficultyBeginner,
				QuizLength: 5,
				Questions: []models.Question{
					{ID: 1, Text: `Which word completes the sentence? "An ___ a day keeps the doctor away."`, Options: []string{"Orange", "Apple", "Banana", "Egg"}, CorrectAnswer: "Apple"},
					{ID: 2, Text: "Which sentence sounds the most natural?", Options: []string{"I like pizza very much.", "Pizza I like much very.", "Much I like very pizza.", "Very pizza I like much."}, CorrectAnswer: "I like pizza very much."},
					{ID: 3, Text: `What is the opposite of "happy"?`, Options: []string{"Angry", "Sad", "Tired", "Excited"}, CorrectAnswer: "Sad"},
					{ID: 4, Text: "What do you call the meal you eat in the morning?", Options: []string{"Lunch", "Dinner", "Breakfast", "Snack"}, CorrectAnswer: "Breakfast"},
					{ID: 5, Text: `Which word means "a place where you borrow books"?`, Options: []string{"Bookstore", "Library", "School", "Museum"}, CorrectAnswer: "Library"},
					{ID: 6, Text: "She bought a ___ dress.", Options: []string{"beautiful", "beauty", "beautifully", "beautify"}, CorrectAnswer: "beautiful"},
				},
			},
			{
				Name:       "B1 - Intermediate",
				Difficulty: models.DifficultyIntermediate,
				QuizLength: 5,
				Questions: []models.Question{
					{ID: 1, Text: "If I ___ you, I would study harder.", Options: []string{"was", "were", "am", "be"}, CorrectAnswer: "were"},
					{ID: 2, Text: "He has been working here ___ 2010.", Options: []string{"since", "for", "at", "in"}, CorrectAnswer: "since"},
					{ID: 3, Text: "I'm looking forward ___ you soon.", Options: []string{"to see", "to seeing", "seeing", "see"}, CorrectAnswer: "to seeing"},
					{ID: 4, Text: "You should ___ smoking. It's bad for your health.", Options: []string{"give up", "give in", "give away", "give back"}, CorrectAnswer: "give up"},
					{ID: 5, Text: "Could you tell me where ___?", Options: []string{"is the station", "the station is", "is station", "station is"}, CorrectAnswer: "the station is"},
					{ID: 6, Text: "She is used to ___ up early.", Options: []string{"get", "getting", "got", "have gotten"}, CorrectAnswer: "getting"},
				},
			},
			{
				Name:       "C1 - Advanced",
				Difficulty: models.DifficultyAdvanced,
				QuizLength: 5,
				Questions: []models.Question{
					{ID: 1, Text: "Scarcely ___ the house when the phone rang.", Options: []string{"I had left", "had I left", "I left", "did I leave"}, CorrectAnswer: "had I left"},
					{ID: 2, Text: `Which word is closest in meaning to "ubiquitous"?`, Options: []string{"Rare", "Omnipresent", "Transparent", "Obsolete"}, CorrectAnswer: "Omnipresent"},
					{ID: 3, Text: "The committee's findings were ___ with the earlier report.", Options: []string{"at odds", "in odds", "on odds", "by odds"}, CorrectAnswer: "at odds"},
					{ID: 4, Text: "Had it not been for his quick thinking, the deal ___ through.", Options: []string{"would fall", "would have fallen", "fell", "had fallen"}, CorrectAnswer: "would have fallen"},
					{ID: 5, Text: `"To beat around the bush" means:`, Options: []string{"To avoid the main topic", "To work in a garden", "To win easily", "To search thoroughly"}, CorrectAnswer: "To avoid the main topic"},
					{ID: 6, Text: "Not only ___ late, but he also forgot the documents.", Options: []string{"he arrived", "did he arrive", "he did arrive", "arrived he"}, CorrectAnswer: "did he arrive"},
				},
			},
		},
	},
	{
		Name:        "Spanish",
		Code:        "ES",
		Flag:        "https://flagcdn.com/w320/es.png",
		Description: "Spoken by over 500 million people across Spain and the Americas.",
		Levels: []models.Level{
			{
				Name:       "A1 - Beginner",
				Difficulty: models.DifficultyBeginner,
				QuizLength: 5,
				Questions: []models.Question{
					{ID: 1, Text: `How do you say "good morning" in Spanish?`, Options: []string{"Buenas noches", "Buenos días", "Buenas tardes", "Hola"}, CorrectAnswer: "Buenos días"},
					{ID: 2, Text: `What does "gato" mean?`, Options: []string{"Dog", "Cat", "Bird", "Fish"}, CorrectAnswer: "Cat"},
					{ID: 3, Text: "Yo ___ estudiante.", Options: []string{"soy", "eres", "es", "somos"}, CorrectAnswer: "soy"},
					{ID: 4, Text: `Which is the correct article? "___ casa"`, Options: []string{"El", "La", "Los", "Un"}, CorrectAnswer: "La"},
					{ID: 5, Text: `"Rojo" is the color:`, Options: []string{"Blue", "Green", "Red", "Yellow"}, CorrectAnswer: "Red"},
					{ID: 6, Text: `How do you count to three?`, Options: []string{"uno, dos, tres", "un, deux, trois", "eins, zwei, drei", "one, two, three"}, CorrectAnswer: "uno, dos, tres"},
				},
			},
			{
				Name:       "B1 - Intermediate",
				Difficulty: models.DifficultyIntermediate,
				QuizLength: 5,
				Questions: []models.Question{
					{ID: 1, Text: "Ayer ___ al cine con mis amigos.", Options: []string{"voy", "fui", "iba", "iré"}, CorrectAnswer: "fui"},
					{ID: 2, Text: "Espero que ___ buen tiempo mañana.", Options: []string{"hace", "hará", "haga", "hizo"}, CorrectAnswer: "haga"},
					{ID: 3, Text: `"Tener ganas de" means:`, Options: []string{"To be tired of", "To feel like", "To be afraid of", "To take care of"}, CorrectAnswer: "To feel like"},
					{ID: 4, Text: "Cuando era niño, ___ mucho al fútbol.", Options: []string{"jugué", "jugaba", "juego", "jugaré"}, CorrectAnswer: "jugaba"},
					{ID: 5, Text: "¿___ tiempo llevas viviendo aquí?", Options: []string{"Cuánto", "Cuándo", "Cómo", "Cuál"}, CorrectAnswer: "Cuánto"},
					{ID: 6, Text: "Me alegro de que te ___ la ciudad.", Options: []string{"gusta", "guste", "gustó", "gustará"}, CorrectAnswer: "guste"},
				},
			},
		},
	},
	{
		Name:        "French",
		Code:        "FR",
		Flag:        "https://flagcdn.com/w320/fr.png",
		Description: "The language of diplomacy, cuisine and culture, spoken on five continents.",
		Levels: []models.Level{
			{
				Name:       "A1 - Beginner",
				Difficulty: models.DifficultyBeginner,
				QuizLength: 5,
				Questions: []models.Question{
					{ID: 1, Text: `How do you say "thank you" in French?`, Options: []string{"Bonjour", "Merci", "Au revoir", "S'il vous plaît"}, CorrectAnswer: "Merci"},
					{ID: 2, Text: `What does "chien" mean?`, Options: []string{"Cat", "Dog", "Horse", "Rabbit"}, CorrectAnswer: "Dog"},
					{ID: 3, Text: "Je ___ français.", Options: []string{"parle", "parles", "parlons", "parlez"}, CorrectAnswer: "parle"},
					{ID: 4, Text: `Which is the correct article? "___ pomme"`, Options: []string{"Le", "La", "Les", "Un"}, CorrectAnswer: "La"},
					{ID: 5, Text: `"Bleu" is the color:`, Options: []string{"Red", "Green", "Blue", "White"}, CorrectAnswer: "Blue"},
					{ID: 6, Text: `How do you say "good evening"?`, Options: []string{"Bonsoir", "Bonjour", "Bonne nuit", "Salut"}, CorrectAnswer: "Bonsoir"},
				},
			},
			{
				Name:       "C1 - Advanced",
				Difficulty: models.DifficultyAdvanced,
				QuizLength: 5,
				Questions: []models.Question{
					{ID: 1, Text: "Il faut que tu ___ avant midi.", Options: []string{"viens", "viennes", "venais", "viendras"}, CorrectAnswer: "viennes"},
					{ID: 2, Text: `"Avoir le cafard" signifie:`, Options: []string{"Être heureux", "Être déprimé", "Avoir faim", "Être en retard"}, CorrectAnswer: "Être déprimé"},
					{ID: 3, Text: "Si j'avais su, je ___ plus tôt.", Options: []string{"serais venu", "viendrais", "venais", "suis venu"}, CorrectAnswer: "serais venu"},
					{ID: 4, Text: "C'est la ville ___ je suis né.", Options: []string{"que", "qui", "où", "dont"}, CorrectAnswer: "où"},
					{ID: 5, Text: "Bien qu'il ___ malade, il est venu travailler.", Options: []string{"est", "soit", "était", "sera"}, CorrectAnswer: "soit"},
					{ID: 6, Text: `"Dont" remplace un complément introduit par:`, Options: []string{"à", "de", "avec", "pour"}, CorrectAnswer: "de"},
				},
			},
		},
	},
}
