package service

import "dowry-calculator/internal/domain"

// PageContent devuelve los textos fijos que acompañan al formulario.
func PageContent() domain.PageContent {
	return domain.PageContent{
		Disclaimer: "This app is purely satirical and aims to raise awareness against the dowry system. " +
			"Dowry is illegal in India under the Dowry Prohibition Act, 1961. " +
			"This is not financial advice, and we strongly condemn the practice of dowry.",
		RealityCheck: []string{
			"BTW, dowry is illegal under IPC Section 498A and the Dowry Prohibition Act, 1961.",
			"This calculator is purely satirical. In reality, a person's worth cannot and should not be measured by material possessions or physical attributes.",
			"Say No to Dowry!",
		},
		Mission: "To use humor and technology to raise awareness against the illegal and harmful practice of dowry in Indian society.",
		Lessons: []string{
			"Dowry is illegal under Indian law",
			"Human worth cannot be measured in material terms",
			"Complexion-based discrimination is wrong",
			"Gender equality should be the norm",
		},
		Testimonials: []domain.Testimonial{
			{Text: "I got rejected because I only had 1 buffalo. Now I know I need at least 3!", Author: "Sanjay, Govt Clerk", Rating: 5},
			{Text: "Finally, an app that tells me how greedy my relatives are!", Author: "Ramesh, MBA", Rating: 5},
			{Text: "My complexion dropped my value by 2 lakhs. Thanks for the reality check!", Author: "Priya, Software Engineer", Rating: 4},
			{Text: "The AI said I'm worth negative dowry. Best compliment ever!", Author: "Arjun, Teacher", Rating: 5},
		},
	}
}
