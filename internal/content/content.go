// Package content serves the static public health material: educational
// topics and a daily rotating tip. The catalog is compiled in; no database
// round trip is involved.
package content

import (
	"time"
)

// HealthTopic is one educational entry in the public catalog.
type HealthTopic struct {
	ID          int      `json:"id"`
	Category    string   `json:"category"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tips        []string `json:"tips"`
	Icon        string   `json:"icon"`
}

// HealthTip is a single actionable suggestion.
type HealthTip struct {
	Category string `json:"category"`
	Tip      string `json:"tip"`
	Icon     string `json:"icon"`
}

// TipOfDayDTO is the tip plus the calendar date it applies to.
type TipOfDayDTO struct {
	HealthTip
	Date string `json:"date"`
}

var healthTopics = []HealthTopic{
	{
		ID:          1,
		Category:    "Nutrition",
		Title:       "Balanced Diet Essentials",
		Description: "A balanced diet includes fruits, vegetables, whole grains, lean proteins, and healthy fats.",
		Tips: []string{
			"Eat at least 5 servings of fruits and vegetables daily",
			"Choose whole grains over refined grains",
			"Include lean proteins like fish, chicken, and legumes",
			"Limit processed foods and added sugars",
		},
		Icon: "🥗",
	},
	{
		ID:          2,
		Category:    "Exercise",
		Title:       "Physical Activity Guidelines",
		Description: "Regular physical activity is crucial for maintaining good health and preventing chronic diseases.",
		Tips: []string{
			"Aim for 150 minutes of moderate aerobic activity per week",
			"Include strength training exercises twice a week",
			"Take breaks from sitting every 30 minutes",
			"Find activities you enjoy to stay motivated",
		},
		Icon: "🏃",
	},
	{
		ID:          3,
		Category:    "Sleep",
		Title:       "Importance of Quality Sleep",
		Description: "Quality sleep is essential for physical health, mental well-being, and overall quality of life.",
		Tips: []string{
			"Aim for 7-9 hours of sleep per night",
			"Maintain a consistent sleep schedule",
			"Create a relaxing bedtime routine",
			"Avoid screens 1 hour before bedtime",
		},
		Icon: "😴",
	},
	{
		ID:          4,
		Category:    "Hydration",
		Title:       "Staying Hydrated",
		Description: "Proper hydration is vital for body temperature regulation, nutrient transport, and waste removal.",
		Tips: []string{
			"Drink 8-10 glasses of water daily",
			"Increase intake during exercise or hot weather",
			"Monitor urine color (pale yellow is ideal)",
			"Eat water-rich foods like fruits and vegetables",
		},
		Icon: "💧",
	},
	{
		ID:          5,
		Category:    "Mental Health",
		Title:       "Mental Wellness Practices",
		Description: "Mental health is just as important as physical health for overall well-being.",
		Tips: []string{
			"Practice mindfulness or meditation daily",
			"Stay connected with friends and family",
			"Seek professional help when needed",
			"Engage in hobbies and activities you enjoy",
		},
		Icon: "🧠",
	},
	{
		ID:          6,
		Category:    "Preventive Care",
		Title:       "Regular Health Checkups",
		Description: "Preventive care helps detect health issues early when they are easier to treat.",
		Tips: []string{
			"Schedule annual physical examinations",
			"Get age-appropriate screenings (blood pressure, cholesterol, etc.)",
			"Stay up-to-date with vaccinations",
			"Discuss family health history with your doctor",
		},
		Icon: "🏥",
	},
}

var healthTips = []HealthTip{
	{Category: "Hydration", Tip: "Drink a glass of water first thing in the morning to kickstart your metabolism and rehydrate after sleep.", Icon: "💧"},
	{Category: "Exercise", Tip: "Take a 10-minute walk after meals to aid digestion and help regulate blood sugar levels.", Icon: "🚶"},
	{Category: "Nutrition", Tip: "Add colorful vegetables to your meals - different colors provide different nutrients and antioxidants.", Icon: "🥗"},
	{Category: "Sleep", Tip: "Keep your bedroom cool (60-67°F) for optimal sleep quality and deeper rest.", Icon: "😴"},
	{Category: "Mental Health", Tip: "Practice deep breathing for 5 minutes daily to reduce stress and improve focus.", Icon: "🧘"},
	{Category: "Posture", Tip: "Set a reminder to check your posture every hour - sit up straight with shoulders back.", Icon: "🪑"},
	{Category: "Eye Health", Tip: "Follow the 20-20-20 rule: Every 20 minutes, look at something 20 feet away for 20 seconds.", Icon: "👁️"},
	{Category: "Nutrition", Tip: "Eat mindfully - chew slowly and put your fork down between bites to improve digestion.", Icon: "🍽️"},
	{Category: "Exercise", Tip: "Take the stairs instead of the elevator to add more movement to your daily routine.", Icon: "🪜"},
	{Category: "Hydration", Tip: "Keep a water bottle with you throughout the day as a visual reminder to stay hydrated.", Icon: "🚰"},
	{Category: "Sleep", Tip: "Avoid caffeine 6 hours before bedtime to ensure better sleep quality.", Icon: "☕"},
	{Category: "Mental Health", Tip: "Write down 3 things you're grateful for each day to boost your mood and mental well-being.", Icon: "📝"},
	{Category: "Nutrition", Tip: "Include protein in your breakfast to stay fuller longer and maintain steady energy levels.", Icon: "🥚"},
	{Category: "Exercise", Tip: "Stretch for 5-10 minutes in the morning to improve flexibility and reduce muscle tension.", Icon: "🤸"},
	{Category: "Hygiene", Tip: "Wash your hands for at least 20 seconds with soap and water to prevent illness.", Icon: "🧼"},
}

// HealthTopics returns the full topic catalog.
func HealthTopics() []HealthTopic {
	return healthTopics
}

// TipOfDay picks the tip for the given instant. Selection rotates with the
// day of year, so every caller sees the same tip on the same date.
func TipOfDay(now time.Time) TipOfDayDTO {
	tip := healthTips[now.YearDay()%len(healthTips)]
	return TipOfDayDTO{
		HealthTip: tip,
		Date:      now.Format("2006-01-02"),
	}
}
