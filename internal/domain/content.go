package domain

type Testimonial struct {
	Text   string `json:"text"`
	Author string `json:"author"`
	Rating int    `json:"rating"`
}

type PageContent struct {
	Disclaimer   string        `json:"disclaimer"`
	RealityCheck []string      `json:"reality_check"`
	Mission      string        `json:"mission"`
	Lessons      []string      `json:"lessons"`
	Testimonials []Testimonial `json:"testimonials"`
}

type Feedback struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Tally son contadores anónimos; no guarda ningún dato del formulario.
type Tally struct {
	TotalValuations     int64 `json:"total_valuations"`
	PricelessValuations int64 `json:"priceless_valuations"`
}
