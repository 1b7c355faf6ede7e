// Package catalog holds the static lesson content and seeds it into the
// database. Each learning language carries its own lesson sequence; exercise
// sets are plain catalog data looked up by lesson, the engine never
// generates them.
package catalog

import (
	"encoding/json"

	"lingolearn/backend/models"

	"gorm.io/gorm"
)

type exerciseSpec struct {
	Kind    string
	Prompt  string
	Options []string
	Answer  string
}

type lessonSpec struct {
	Title         string
	Description   string
	Icon          string
	Level         int
	XP            int
	Unit          int
	SequenceOrder int
	Exercises     []exerciseSpec
}

// languageOrder fixes the seeding order; catalogs is keyed by the learning
// language stored on Profile.LearningLanguage.
var languageOrder = []string{"spanish", "french", "german", "italian", "japanese"}

var catalogs = map[string][]lessonSpec{
	"spanish": {
		{
			Title:         "Basics 1",
			Description:   "Learn essential Spanish words and phrases",
			Icon:          "book",
			Level:         1,
			XP:            10,
			Unit:          1,
			SequenceOrder: 1,
			Exercises: []exerciseSpec{
				{
					Kind:    models.ExerciseMultipleChoice,
					Prompt:  "How do you say 'hello' in Spanish?",
					Options: []string{"Hola", "Adiós", "Gracias", "Buenos días"},
					Answer:  "Hola",
				},
				{
					Kind:    models.ExerciseMultipleChoice,
					Prompt:  "What does 'Buenos días' mean?",
					Options: []string{"Good morning", "Good night", "Good afternoon", "Goodbye"},
					Answer:  "Good morning",
				},
				{
					Kind:   models.ExerciseTranslation,
					Prompt: "Translate to Spanish: thank you",
					Answer: "Gracias",
				},
				{
					Kind:    models.ExerciseFillBlank,
					Prompt:  "___ noches means 'good night'",
					Options: []string{"Buenas", "Buenos", "Bien"},
					Answer:  "Buenas",
				},
			},
		},
		{
			Title:         "Common Phrases",
			Description:   "Learn everyday Spanish expressions",
			Icon:          "message-circle",
			Level:         1,
			XP:            15,
			Unit:          1,
			SequenceOrder: 2,
			Exercises: []exerciseSpec{
				{
					Kind:    models.ExerciseMultipleChoice,
					Prompt:  "What does '¿Cómo estás?' mean?",
					Options: []string{"How are you?", "What's your name?", "Where are you from?", "How old are you?"},
					Answer:  "How are you?",
				},
				{
					Kind:    models.ExerciseMultipleChoice,
					Prompt:  "How do you ask 'What's your name?' in Spanish?",
					Options: []string{"¿Cómo te llamas?", "¿De dónde eres?", "¿Cuántos años tienes?", "¿Qué hora es?"},
					Answer:  "¿Cómo te llamas?",
				},
				{
					Kind:    models.ExerciseMultipleChoice,
					Prompt:  "What does 'Mucho gusto' mean?",
					Options: []string{"Nice to meet you", "See you later", "Have a good day", "How are you?"},
					Answer:  "Nice to meet you",
				},
				{
					Kind:   models.ExerciseTranslation,
					Prompt: "Translate to Spanish: please",
					Answer: "Por favor",
				},
			},
		},
		{
			Title:         "Numbers",
			Description:   "Count from one to ten in Spanish",
			Icon:          "hash",
			Level:         1,
			XP:            15,
			Unit:          1,
			SequenceOrder: 3,
			Exercises: []exerciseSpec{
				{
					Kind:    models.ExerciseMultipleChoice,
					Prompt:  "What is 'three' in Spanish?",
					Options: []string{"Tres", "Dos", "Seis", "Trece"},
					Answer:  "Tres",
				},
				{
					Kind:    models.ExerciseFillBlank,
					Prompt:  "Cuatro, cinco, ___, siete",
					Options: []string{"seis", "ocho", "nueve"},
					Answer:  "seis",
				},
				{
					Kind:   models.ExerciseTranslation,
					Prompt: "Translate to Spanish: ten",
					Answer: "Diez",
				},
			},
		},
		{
			Title:         "Food & Drink",
			Description:   "Order food and drinks in Spanish",
			Icon:          "utensils",
			Level:         2,
			XP:            20,
			Unit:          2,
			SequenceOrder: 4,
			Exercises: []exerciseSpec{
				{
					Kind:    models.ExerciseMultipleChoice,
					Prompt:  "What does 'agua' mean?",
					Options: []string{"Water", "Wine", "Bread", "Milk"},
					Answer:  "Water",
				},
				{
					Kind:   models.ExerciseTranslation,
					Prompt: "Translate to Spanish: the bread",
					Answer: "El pan",
				},
				{
					Kind:    models.ExerciseFillBlank,
					Prompt:  "Quiero un ___ de naranja (I want an orange juice)",
					Options: []string{"jugo", "agua", "pan"},
					Answer:  "jugo",
				},
				{
					Kind:    models.ExerciseMultipleChoice,
					Prompt:  "How do you say 'the bill, please'?",
					Options: []string{"La cuenta, por favor", "El menú, por favor", "La mesa, por favor"},
					Answer:  "La cuenta, por favor",
				},
			},
		},
		{
			Title:         "Travel",
			Description:   "Find your way around a Spanish-speaking city",
			Icon:          "map",
			Level:         2,
			XP:            20,
			Unit:          2,
			SequenceOrder: 5,
			Exercises: []exerciseSpec{
				{
					Kind:    models.ExerciseMultipleChoice,
					Prompt:  "What does '¿Dónde está la estación?' mean?",
					Options: []string{"Where is the station?", "When does the train leave?", "How much is a ticket?"},
					Answer:  "Where is the station?",
				},
				{
					Kind:   models.ExerciseTranslation,
					Prompt: "Translate to Spanish: the airport",
					Answer: "El aeropuerto",
				},
				{
					Kind:    models.ExerciseFillBlank,
					Prompt:  "Gire a la ___ (turn left)",
					Options: []string{"izquierda", "derecha", "recto"},
					Answer:  "izquierda",
				},
			},
		},
		{
			Title:         "Basic Verbs",
			Description:   "Learn basic Spanish verb conjugations",
			Icon:          "zap",
			Level:         3,
			XP:            25,
			Unit:          2,
			SequenceOrder: 6,
			Exercises: []exerciseSpec{
				{
					Kind:    models.ExerciseMultipleChoice,
					Prompt:  "What is 'I speak' in Spanish?",
					Options: []string{"Yo hablo", "Tú hablas", "Él habla", "Nosotros hablamos"},
					Answer:  "Yo hablo",
				},
				{
					Kind:    models.ExerciseMultipleChoice,
					Prompt:  "What is 'you eat' (informal singular) in Spanish?",
					Options: []string{"Tú comes", "Yo como", "Él come", "Nosotros comemos"},
					Answer:  "Tú comes",
				},
				{
					Kind:    models.ExerciseFillBlank,
					Prompt:  "Ella ___ en Madrid (she lives in Madrid)",
					Options: []string{"vive", "vivo", "vives"},
					Answer:  "vive",
				},
				{
					Kind:   models.ExerciseTranslation,
					Prompt: "Translate to Spanish: we speak",
					Answer: "Nosotros hablamos",
				},
			},
		},
		{
			Title:         "Animals",
			Description:   "Learn animal names in Spanish",
			Icon:          "paw-print",
			Level:         3,
			XP:            20,
			Unit:          2,
			SequenceOrder: 7,
			Exercises: []exerciseSpec{
				{
					Kind:    models.ExerciseMultipleChoice,
					Prompt:  "What is 'perro' in English?",
					Options: []string{"Dog", "Cat", "Bird", "Fish"},
					Answer:  "Dog",
				},
				{
					Kind:    models.ExerciseMultipleChoice,
					Prompt:  "What is 'gato' in English?",
					Options: []string{"Cat", "Dog", "Bird", "Mouse"},
					Answer:  "Cat",
				},
				{
					Kind:    models.ExerciseMultipleChoice,
					Prompt:  "What does 'caballo' mean?",
					Options: []string{"Horse", "Cow", "Sheep", "Pig"},
					Answer:  "Horse",
				},
			},
		},
	},
	"french": {
		{
			Title:         "Basics 1",
			Description:   "Learn essential French words and phrases",
			Icon:          "book",
			Level:         1,
			XP:            10,
			Unit:          1,
			SequenceOrder: 1,
			Exercises: []exerciseSpec{
				{
					Kind:    models.ExerciseMultipleChoice,
					Prompt:  "How do you say 'hello' in French?",
					Options: []string{"Bonjour", "Au revoir", "Merci", "S'il vous plaît"},
					Answer:  "Bonjour",
				},
				{
					Kind:    models.ExerciseMultipleChoice,
					Prompt:  "What does 'Bonne nuit' mean?",
					Options: []string{"Good night", "Good morning", "Good afternoon", "Goodbye"},
					Answer:  "Good night",
				},
				{
					Kind:   models.ExerciseTranslation,
					Prompt: "Translate to French: thank you",
					Answer: "Merci",
				},
			},
		},
		{
			Title:         "Common Phrases",
			Description:   "Learn everyday French expressions",
			Icon:          "message-circle",
			Level:         1,
			XP:            15,
			Unit:          1,
			SequenceOrder: 2,
			Exercises: []exerciseSpec{
				{
					Kind:    models.ExerciseMultipleChoice,
					Prompt:  "What does 'Comment ça va?' mean?",
					Options: []string{"How are you?", "What's your name?", "Where are you from?", "How old are you?"},
					Answer:  "How are you?",
				},
				{
					Kind:    models.ExerciseMultipleChoice,
					Prompt:  "How do you ask 'What's your name?' in French?",
					Options: []string{"Comment vous appelez-vous?", "D'où venez-vous?", "Quel âge avez-vous?", "Quelle heure est-il?"},
					Answer:  "Comment vous appelez-vous?",
				},
				{
					Kind:    models.ExerciseMultipleChoice,
					Prompt:  "What does 'Enchanté' mean?",
					Options: []string{"Nice to meet you", "See you later", "Have a good day", "How are you?"},
					Answer:  "Nice to meet you",
				},
			},
		},
		{
			Title:         "Food & Drink",
			Description:   "Learn French food and drink words",
			Icon:          "utensils",
			Level:         2,
			XP:            20,
			Unit:          2,
			SequenceOrder: 3,
			Exercises: []exerciseSpec{
				{
					Kind:    models.ExerciseMultipleChoice,
					Prompt:  "What is 'pomme' in English?",
					Options: []string{"Apple", "Banana", "Orange", "Strawberry"},
					Answer:  "Apple",
				},
				{
					Kind:    models.ExerciseMultipleChoice,
					Prompt:  "What is 'eau' in English?",
					Options: []string{"Water", "Wine", "Beer", "Juice"},
					Answer:  "Water",
				},
				{
					Kind:    models.ExerciseMultipleChoice,
					Prompt:  "What does 'œuf' mean?",
					Options: []string{"Egg", "Cheese", "Bread", "Meat"},
					Answer:  "Egg",
				},
			},
		},
		{
			Title:         "Animals",
			Description:   "Learn animal names in French",
			Icon:          "paw-print",
			Level:         2,
			XP:            20,
			Unit:          2,
			SequenceOrder: 4,
			Exercises: []exerciseSpec{
				{
					Kind:    models.ExerciseMultipleChoice,
					Prompt:  "What is 'chien' in English?",
					Options: []string{"Dog", "Cat", "Bird", "Fish"},
					Answer:  "Dog",
				},
				{
					Kind:    models.ExerciseMultipleChoice,
					Prompt:  "What is 'chat' in English?",
					Options: []string{"Cat", "Dog", "Bird", "Mouse"},
					Answer:  "Cat",
				},
				{
					Kind:    models.ExerciseMultipleChoice,
					Prompt:  "What does 'cheval' mean?",
					Options: []string{"Horse", "Cow", "Sheep", "Pig"},
					Answer:  "Horse",
				},
			},
		},
		{
			Title:         "Basic Verbs",
			Description:   "Learn basic French verb conjugations",
			Icon:          "zap",
			Level:         3,
			XP:            25,
			Unit:          2,
			SequenceOrder: 5,
			Exercises: []exerciseSpec{
				{
					Kind:    models.ExerciseMultipleChoice,
					Prompt:  "What is 'I speak' in French?",
					Options: []string{"Je parle", "Tu parles", "Il parle", "Nous parlons"},
					Answer:  "Je parle",
				},
				{
					Kind:    models.ExerciseMultipleChoice,
					Prompt:  "What is 'you eat' (informal singular) in French?",
					Options: []string{"Tu manges", "Je mange", "Il mange", "Nous mangeons"},
					Answer:  "Tu manges",
				},
				{
					Kind:    models.ExerciseMultipleChoice,
					Prompt:  "What is 'she lives' in French?",
					Options: []string{"Elle habite", "J'habite", "Tu habites", "Nous habitons"},
					Answer:  "Elle habite",
				},
			},
		},
	},
	"german": {
		{
			Title:         "Basics 1",
			Description:   "Learn essential German words and phrases",
			Icon:          "book",
			Level:         1,
			XP:            10,
			Unit:          1,
			SequenceOrder: 1,
			Exercises: []exerciseSpec{
				{
					Kind:    models.ExerciseMultipleChoice,
					Prompt:  "How do you say 'hello' in German?",
					Options: []string{"Hallo", "Auf Wiedersehen", "Danke", "Bitte"},
					Answer:  "Hallo",
				},
				{
					Kind:    models.ExerciseMultipleChoice,
					Prompt:  "What does 'Guten Morgen' mean?",
					Options: []string{"Good morning", "Good night", "Good afternoon", "Goodbye"},
					Answer:  "Good morning",
				},
				{
					Kind:   models.ExerciseTranslation,
					Prompt: "Translate to German: thank you",
					Answer: "Danke",
				},
			},
		},
		{
			Title:         "Common Phrases",
			Description:   "Learn everyday German expressions",
			Icon:          "message-circle",
			Level:         1,
			XP:            15,
			Unit:          1,
			SequenceOrder: 2,
			Exercises: []exerciseSpec{
				{
					Kind:    models.ExerciseMultipleChoice,
					Prompt:  "What does 'Wie geht es dir?' mean?",
					Options: []string{"How are you?", "What's your name?", "Where are you from?", "How old are you?"},
					Answer:  "How are you?",
				},
				{
					Kind:    models.ExerciseMultipleChoice,
					Prompt:  "How do you ask 'What's your name?' in German?",
					Options: []string{"Wie heißt du?", "Woher kommst du?", "Wie alt bist du?", "Wie spät ist es?"},
					Answer:  "Wie heißt du?",
				},
				{
					Kind:    models.ExerciseMultipleChoice,
					Prompt:  "What does 'Freut mich' mean?",
					Options: []string{"Nice to meet you", "See you later", "Have a good day", "How are you?"},
					Answer:  "Nice to meet you",
				},
			},
		},
		{
			Title:         "Food & Drink",
			Description:   "Learn German food and drink words",
			Icon:          "utensils",
			Level:         2,
			XP:            20,
			Unit:          2,
			SequenceOrder: 3,
			Exercises: []exerciseSpec{
				{
					Kind:    models.ExerciseMultipleChoice,
					Prompt:  "What is 'Apfel' in English?",
					Options: []string{"Apple", "Banana", "Orange", "Strawberry"},
					Answer:  "Apple",
				},
				{
					Kind:    models.ExerciseMultipleChoice,
					Prompt:  "What is 'Wasser' in English?",
					Options: []string{"Water", "Wine", "Beer", "Juice"},
					Answer:  "Water",
				},
				{
					Kind:    models.ExerciseMultipleChoice,
					Prompt:  "What does 'Ei' mean?",
					Options: []string{"Egg", "Cheese", "Bread", "Meat"},
					Answer:  "Egg",
				},
			},
		},
		{
			Title:         "Animals",
			Description:   "Learn animal names in German",
			Icon:          "paw-print",
			Level:         2,
			XP:            20,
			Unit:          2,
			SequenceOrder: 4,
			Exercises: []exerciseSpec{
				{
					Kind:    models.ExerciseMultipleChoice,
					Prompt:  "What is 'Hund' in English?",
					Options: []string{"Dog", "Cat", "Bird", "Fish"},
					Answer:  "Dog",
				},
				{
					Kind:    models.ExerciseMultipleChoice,
					Prompt:  "What is 'Katze' in English?",
					Options: []string{"Cat", "Dog", "Bird", "Mouse"},
					Answer:  "Cat",
				},
				{
					Kind:    models.ExerciseMultipleChoice,
					Prompt:  "What does 'Pferd' mean?",
					Options: []string{"Horse", "Cow", "Sheep", "Pig"},
					Answer:  "Horse",
				},
			},
		},
		{
			Title:         "Basic Verbs",
			Description:   "Learn basic German verb conjugations",
			Icon:          "zap",
			Level:         3,
			XP:            25,
			Unit:          2,
			SequenceOrder: 5,
			Exercises: []exerciseSpec{
				{
					Kind:    models.ExerciseMultipleChoice,
					Prompt:  "What is 'I speak' in German?",
					Options: []string{"Ich spreche", "Du sprichst", "Er spricht", "Wir sprechen"},
					Answer:  "Ich spreche",
				},
				{
					Kind:    models.ExerciseMultipleChoice,
					Prompt:  "What is 'you eat' (informal singular) in German?",
					Options: []string{"Du isst", "Ich esse", "Er isst", "Wir essen"},
					Answer:  "Du isst",
				},
				{
					Kind:    models.ExerciseMultipleChoice,
					Prompt:  "What is 'she lives' in German?",
					Options: []string{"Sie wohnt", "Ich wohne", "Du wohnst", "Wir wohnen"},
					Answer:  "Sie wohnt",
				},
			},
		},
	},
	"italian": {
		{
			Title:         "Basics 1",
			Description:   "Learn essential Italian words and phrases",
			Icon:          "book",
			Level:         1,
			XP:            10,
			Unit:          1,
			SequenceOrder: 1,
			Exercises: []exerciseSpec{
				{
					Kind:    models.ExerciseMultipleChoice,
					Prompt:  "How do you say 'hello' in Italian?",
					Options: []string{"Ciao", "Arrivederci", "Grazie", "Buongiorno"},
					Answer:  "Ciao",
				},
				{
					Kind:    models.ExerciseMultipleChoice,
					Prompt:  "What does 'Buona notte' mean?",
					Options: []string{"Good night", "Good morning", "Good afternoon", "Goodbye"},
					Answer:  "Good night",
				},
				{
					Kind:   models.ExerciseTranslation,
					Prompt: "Translate to Italian: thank you",
					Answer: "Grazie",
				},
			},
		},
		{
			Title:         "Common Phrases",
			Description:   "Learn everyday Italian expressions",
			Icon:          "message-circle",
			Level:         1,
			XP:            15,
			Unit:          1,
			SequenceOrder: 2,
			Exercises: []exerciseSpec{
				{
					Kind:    models.ExerciseMultipleChoice,
					Prompt:  "What does 'Come stai?' mean?",
					Options: []string{"How are you?", "What's your name?", "Where are you from?", "How old are you?"},
					Answer:  "How are you?",
				},
				{
					Kind:    models.ExerciseMultipleChoice,
					Prompt:  "How do you ask 'What's your name?' in Italian?",
					Options: []string{"Come ti chiami?", "Di dove sei?", "Quanti anni hai?", "Che ora è?"},
					Answer:  "Come ti chiami?",
				},
				{
					Kind:    models.ExerciseMultipleChoice,
					Prompt:  "What does 'Piacere di conoscerti' mean?",
					Options: []string{"Nice to meet you", "See you later", "Have a good day", "How are you?"},
					Answer:  "Nice to meet you",
				},
			},
		},
		{
			Title:         "Food & Drink",
			Description:   "Learn Italian food and drink words",
			Icon:          "utensils",
			Level:         2,
			XP:            20,
			Unit:          2,
			SequenceOrder: 3,
			Exercises: []exerciseSpec{
				{
					Kind:    models.ExerciseMultipleChoice,
					Prompt:  "What is 'mela' in English?",
					Options: []string{"Apple", "Banana", "Orange", "Strawberry"},
					Answer:  "Apple",
				},
				{
					Kind:    models.ExerciseMultipleChoice,
					Prompt:  "What is 'acqua' in English?",
					Options: []string{"Water", "Wine", "Beer", "Juice"},
					Answer:  "Water",
				},
				{
					Kind:    models.ExerciseMultipleChoice,
					Prompt:  "What does 'uovo' mean?",
					Options: []string{"Egg", "Cheese", "Bread", "Meat"},
					Answer:  "Egg",
				},
			},
		},
		{
			Title:         "Animals",
			Description:   "Learn animal names in Italian",
			Icon:          "paw-print",
			Level:         2,
			XP:            20,
			Unit:          2,
			SequenceOrder: 4,
			Exercises: []exerciseSpec{
				{
					Kind:    models.ExerciseMultipleChoice,
					Prompt:  "What is 'cane' in English?",
					Options: []string{"Dog", "Cat", "Bird", "Fish"},
					Answer:  "Dog",
				},
				{
					Kind:    models.ExerciseMultipleChoice,
					Prompt:  "What is 'gatto' in English?",
					Options: []string{"Cat", "Dog", "Bird", "Mouse"},
					Answer:  "Cat",
				},
				{
					Kind:    models.ExerciseMultipleChoice,
					Prompt:  "What does 'cavallo' mean?",
					Options: []string{"Horse", "Cow", "Sheep", "Pig"},
					Answer:  "Horse",
				},
			},
		},
		{
			Title:         "Basic Verbs",
			Description:   "Learn basic Italian verb conjugations",
			Icon:          "zap",
			Level:         3,
			XP:            25,
			Unit:          2,
			SequenceOrder: 5,
			Exercises: []exerciseSpec{
				{
					Kind:    models.ExerciseMultipleChoice,
					Prompt:  "What is 'I speak' in Italian?",
					Options: []string{"Io parlo", "Tu parli", "Lui parla", "Noi parliamo"},
					Answer:  "Io parlo",
				},
				{
					Kind:    models.ExerciseMultipleChoice,
					Prompt:  "What is 'you eat' (informal singular) in Italian?",
					Options: []string{"Tu mangi", "Io mangio", "Lui mangia", "Noi mangiamo"},
					Answer:  "Tu mangi",
				},
				{
					Kind:    models.ExerciseMultipleChoice,
					Prompt:  "What is 'she lives' in Italian?",
					Options: []string{"Lei vive", "Io vivo", "Tu vivi", "Noi viviamo"},
					Answer:  "Lei vive",
				},
			},
		},
	},
	"japanese": {
		{
			Title:         "Basics 1",
			Description:   "Learn essential Japanese words and phrases",
			Icon:          "book",
			Level:         1,
			XP:            10,
			Unit:          1,
			SequenceOrder: 1,
			Exercises: []exerciseSpec{
				{
					Kind:    models.ExerciseMultipleChoice,
					Prompt:  "How do you say 'hello' in Japanese?",
					Options: []string{"こんにちは (Konnichiwa)", "さようなら (Sayōnara)", "ありがとう (Arigatō)", "お願いします (Onegaishimasu)"},
					Answer:  "こんにちは (Konnichiwa)",
				},
				{
					Kind:    models.ExerciseMultipleChoice,
					Prompt:  "What does 'おやすみなさい (Oyasuminasai)' mean?",
					Options: []string{"Good night", "Good morning", "Good afternoon", "Goodbye"},
					Answer:  "Good night",
				},
				{
					Kind:    models.ExerciseMultipleChoice,
					Prompt:  "How do you say 'thank you' in Japanese?",
					Options: []string{"ありがとう (Arigatō)", "お願いします (Onegaishimasu)", "どういたしまして (Dō itashimashite)", "すみません (Sumimasen)"},
					Answer:  "ありがとう (Arigatō)",
				},
			},
		},
		{
			Title:         "Common Phrases",
			Description:   "Learn everyday Japanese expressions",
			Icon:          "message-circle",
			Level:         1,
			XP:            15,
			Unit:          1,
			SequenceOrder: 2,
			Exercises: []exerciseSpec{
				{
					Kind:    models.ExerciseMultipleChoice,
					Prompt:  "What does 'お元気ですか？ (O genki desu ka?)' mean?",
					Options: []string{"How are you?", "What's your name?", "Where are you from?", "How old are you?"},
					Answer:  "How are you?",
				},
				{
					Kind:    models.ExerciseMultipleChoice,
					Prompt:  "How do you ask 'What's your name?' in Japanese?",
					Options: []string{"お名前は何ですか？ (Onamae wa nan desu ka?)", "どこから来ましたか？ (Doko kara kimashita ka?)", "何歳ですか？ (Nan sai desu ka?)", "今何時ですか？ (Ima nanji desu ka?)"},
					Answer:  "お名前は何ですか？ (Onamae wa nan desu ka?)",
				},
				{
					Kind:    models.ExerciseMultipleChoice,
					Prompt:  "What does 'はじめまして (Hajimemashite)' mean?",
					Options: []string{"Nice to meet you", "See you later", "Have a good day", "How are you?"},
					Answer:  "Nice to meet you",
				},
			},
		},
		{
			Title:         "Food & Drink",
			Description:   "Learn Japanese food and drink words",
			Icon:          "utensils",
			Level:         2,
			XP:            20,
			Unit:          2,
			SequenceOrder: 3,
			Exercises: []exerciseSpec{
				{
					Kind:    models.ExerciseMultipleChoice,
					Prompt:  "What is 'りんご (ringo)' in English?",
					Options: []string{"Apple", "Banana", "Orange", "Strawberry"},
					Answer:  "Apple",
				},
				{
					Kind:    models.ExerciseMultipleChoice,
					Prompt:  "What is '水 (mizu)' in English?",
					Options: []string{"Water", "Wine", "Beer", "Juice"},
					Answer:  "Water",
				},
				{
					Kind:    models.ExerciseMultipleChoice,
					Prompt:  "What does '卵 (tamago)' mean?",
					Options: []string{"Egg", "Cheese", "Bread", "Meat"},
					Answer:  "Egg",
				},
			},
		},
		{
			Title:         "Animals",
			Description:   "Learn animal names in Japanese",
			Icon:          "paw-print",
			Level:         2,
			XP:            20,
			Unit:          2,
			SequenceOrder: 4,
			Exercises: []exerciseSpec{
				{
					Kind:    models.ExerciseMultipleChoice,
					Prompt:  "What is '犬 (inu)' in English?",
					Options: []string{"Dog", "Cat", "Bird", "Fish"},
					Answer:  "Dog",
				},
				{
					Kind:    models.ExerciseMultipleChoice,
					Prompt:  "What is '猫 (neko)' in English?",
					Options: []string{"Cat", "Dog", "Bird", "Mouse"},
					Answer:  "Cat",
				},
				{
					Kind:    models.ExerciseMultipleChoice,
					Prompt:  "What does '馬 (uma)' mean?",
					Options: []string{"Horse", "Cow", "Sheep", "Pig"},
					Answer:  "Horse",
				},
			},
		},
		{
			Title:         "Basic Verbs",
			Description:   "Learn basic Japanese verb forms",
			Icon:          "zap",
			Level:         3,
			XP:            25,
			Unit:          2,
			SequenceOrder: 5,
			Exercises: []exerciseSpec{
				{
					Kind:    models.ExerciseMultipleChoice,
					Prompt:  "What is 'I speak' in Japanese?",
					Options: []string{"私は話します (Watashi wa hanashimasu)", "あなたは話します (Anata wa hanashimasu)", "彼は話します (Kare wa hanashimasu)", "私たちは話します (Watashitachi wa hanashimasu)"},
					Answer:  "私は話します (Watashi wa hanashimasu)",
				},
				{
					Kind:    models.ExerciseMultipleChoice,
					Prompt:  "What is 'you eat' in Japanese?",
					Options: []string{"あなたは食べます (Anata wa tabemasu)", "私は食べます (Watashi wa tabemasu)", "彼は食べます (Kare wa tabemasu)", "私たちは食べます (Watashitachi wa tabemasu)"},
					Answer:  "あなたは食べます (Anata wa tabemasu)",
				},
				{
					Kind:    models.ExerciseMultipleChoice,
					Prompt:  "What is 'she lives' in Japanese?",
					Options: []string{"彼女は住んでいます (Kanojo wa sunde imasu)", "私は住んでいます (Watashi wa sunde imasu)", "あなたは住んでいます (Anata wa sunde imasu)", "私たちは住んでいます (Watashitachi wa sunde imasu)"},
					Answer:  "彼女は住んでいます (Kanojo wa sunde imasu)",
				},
			},
		},
	},
}

// Seed inserts the lesson catalogs if the lessons table is empty. Safe to
// run on every startup.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Lesson{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, language := range languageOrder {
		for _, spec := range catalogs[language] {
			lesson := models.Lesson{
				Language:      language,
				Title:         spec.Title,
				Description:   spec.Description,
				Icon:          spec.Icon,
				Level:         spec.Level,
				XP:            spec.XP,
				Unit:          spec.Unit,
				SequenceOrder: spec.SequenceOrder,
			}
			for i, ex := range spec.Exercises {
				var options json.RawMessage
				if len(ex.Options) > 0 {
					encoded, err := json.Marshal(ex.Options)
					if err != nil {
						return err
					}
					options = encoded
				}
				lesson.Exercises = append(lesson.Exercises, models.Exercise{
					Position: i,
					Kind:     ex.Kind,
					Prompt:   ex.Prompt,
					Options:  options,
					Answer:   ex.Answer,
				})
			}
			if err := db.Create(&lesson).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
