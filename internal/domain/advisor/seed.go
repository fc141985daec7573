package advisor

// DefaultResponder returns the production rule table. Order matters: the
// first keyword present in the input wins.
func DefaultResponder() *Responder {
	rules := []Rule{
		{Keyword: "hello", Reply: "Hello! I'm your GreenFlow assistant. How can I help you with your hydroponic garden today?"},
		{Keyword: "hi", Reply: "Hi there! Ready to grow something amazing?"},
		{Keyword: "help", Reply: "I can help you with plant care, watering schedules, nutrient management, and troubleshooting. What would you like to know?"},
		{Keyword: "water", Reply: "For hydroponics, maintain pH between 5.5-6.5. Check water levels daily and top up as needed. The system uses about 1-2 liters per plant per week."},
		{Keyword: "nutrient", Reply: "Add nutrients every 2 weeks. Use a balanced NPK formula designed for hydroponics. Start with half strength and adjust based on plant response."},
		{Keyword: "ph", Reply: "Ideal pH for most hydroponic plants is 5.8-6.5. Test daily using pH strips or a digital meter. Adjust with pH up or down solutions."},
		{Keyword: "light", Reply: "Most vegetables need 12-16 hours of light daily. Use full-spectrum LED grow lights if natural sunlight is insufficient."},
		{Keyword: "harvest", Reply: "Harvest times vary by plant. Lettuce: 30 days, Spinach: 40 days, Tomatoes: 60 days. Check your plant's specific timeline in the app!"},
		{Keyword: "pest", Reply: "Use organic neem oil spray for common pests. Maintain good air circulation. Inspect plants weekly for early signs of issues."},
		{Keyword: "price", Reply: "Our packages start at ₹3,000 for 40 plants. Installation includes setup, plants, and 1 month support. Subscription is ₹499/month."},
		{Keyword: "subscription", Reply: "Our ₹499/month subscription includes: weekly tips, priority support, plant replacement warranty, and expert consultations."},
		{Keyword: "book", Reply: "You can book a consultation visit for ₹200. Our expert will visit your space, assess sunlight and feasibility, and recommend the best setup!"},
	}

	r, err := NewResponder(rules,
		"I'm not sure about that. Could you ask about watering, nutrients, pH, lighting, harvest times, pests, pricing, or booking a consultation?")
	if err != nil {
		panic(err)
	}
	return r
}
