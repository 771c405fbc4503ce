package repository

import "github.com/aliskhannn/sorting-hat-bot/internal/domain/entities"

// questionBank is the fixed question set. Every question carries exactly
// one option per house.
var questionBank = []entities.Question{
	{
		Prompt: "How do you approach challenges?",
		Options: []entities.Option{
			{Text: "Face them bravely and act fast.", House: entities.Gryffindor},
			{Text: "Stay patient and work through them steadily.", House: entities.Hufflepuff},
			{Text: "Analyze the problem and plan smartly.", House: entities.Ravenclaw},
			{Text: "Look for a clever strategy or advantage.", House: entities.Slytherin},
		},
	},
	{
		Prompt: "What do people like most about you?",
		Options: []entities.Option{
			{Text: "Your boldness and strong will.", House: entities.Gryffindor},
			{Text: "Your loyalty and dependability.", House: entities.Hufflepuff},
			{Text: "Your creativity and intelligence.", House: entities.Ravenclaw},
			{Text: "Your ambition and leadership energy.", House: entities.Slytherin},
		},
	},
	{
		Prompt: "Which activity sounds fun?",
		Options: []entities.Option{
			{Text: "Adventuring or thrilling challenges.", House: entities.Gryffindor},
			{Text: "Helping others or doing teamwork tasks.", House: entities.Hufflepuff},
			{Text: "Reading, puzzles, or solving mysteries.", House: entities.Ravenclaw},
			{Text: "Debating, planning, or competing to win.", House: entities.Slytherin},
		},
	},
	{
		Prompt: "How do you react when someone is being treated unfairly?",
		Options: []entities.Option{
			{Text: "Step in immediately to defend them.", House: entities.Gryffindor},
			{Text: "Support them quietly but consistently.", House: entities.Hufflepuff},
			{Text: "Find the smartest, most effective solution.", House: entities.Ravenclaw},
			{Text: "Shift the situation using strategy.", House: entities.Slytherin},
		},
	},
	{
		Prompt: "What kind of success matters most to you?",
		Options: []entities.Option{
			{Text: "Doing what is right no matter the cost.", House: entities.Gryffindor},
			{Text: "Staying loyal and true while helping others.", House: entities.Hufflepuff},
			{Text: "Gaining knowledge and mastering skills.", House: entities.Ravenclaw},
			{Text: "Achieving big goals and reaching high status.", House: entities.Slytherin},
		},
	},
}

var personalities = map[entities.House]string{
	entities.Gryffindor: "You’re courageous, bold, and full of determination. You stand up for what’s right and inspire those around you.",
	entities.Hufflepuff: "You’re loyal, patient, and hardworking. You value fairness, kindness, and staying true to the people you care about.",
	entities.Ravenclaw:  "You’re intelligent, curious, and creative. You love learning new things and seeing patterns others often miss.",
	entities.Slytherin:  "You’re ambitious, strategic, and resourceful. You set big goals and find clever ways to achieve them.",
}
