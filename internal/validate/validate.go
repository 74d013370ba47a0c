// Package validate implements the form-level checks run before any request
// leaves for the backend. Validation only inspects input, it never
// normalizes it.
package validate

import (
	"regexp"
	"strings"
)

// Permissive on purpose: one at-sign, one dot, no spaces. Full RFC 5322
// checking is the backend's problem.
var emailRe = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// Errors maps a field name to its error message. An empty map means the
// input is valid.
type Errors map[string]string

func (e Errors) OK() bool { return len(e) == 0 }

type TestimonialForm struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Rating int    `json:"rating"`
	Text   string `json:"text"`
}

func Testimonial(form TestimonialForm) Errors {
	errs := Errors{}

	name := strings.TrimSpace(form.Name)
	if name == "" {
		errs["name"] = "Name is required"
	} else if len(name) < 2 {
		errs["name"] = "Name must be at least 2 characters"
	}

	checkEmail(errs, form.Email)

	text := strings.TrimSpace(form.Text)
	switch {
	case text == "":
		errs["text"] = "Testimonial is required"
	case len(text) < 10:
		errs["text"] = "Testimonial must be at least 10 characters"
	case len(text) > 500:
		errs["text"] = "Testimonial must be less than 500 characters"
	}

	if form.Rating < 1 || form.Rating > 5 {
		errs["rating"] = "Rating must be between 1 and 5"
	}

	return errs
}

func Email(email string) Errors {
	errs := Errors{}
	checkEmail(errs, email)
	return errs
}

func Credentials(email, password string) Errors {
	errs := Errors{}
	checkEmail(errs, email)
	if password == "" {
		errs["password"] = "Password is required"
	} else if len(password) < 6 {
		errs["password"] = "Password must be at least 6 characters"
	}
	return errs
}

type SignupForm struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

func Signup(form SignupForm) Errors {
	errs := Credentials(form.Email, form.Password)

	name := strings.TrimSpace(form.Name)
	if name == "" {
		errs["name"] = "Name is required"
	} else if len(name) < 2 {
		errs["name"] = "Name must be at least 2 characters"
	}

	if form.ConfirmPassword != form.Password {
		errs["confirmPassword"] = "Passwords do not match"
	}

	return errs
}

type ContactForm struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	ArtType string `json:"artType"`
	Message string `json:"message"`
}

func Contact(form ContactForm) Errors {
	errs := Errors{}
	if strings.TrimSpace(form.Name) == "" {
		errs["name"] = "Name is required"
	}
	checkEmail(errs, form.Email)
	if strings.TrimSpace(form.Message) == "" {
		errs["message"] = "Message is required"
	}
	return errs
}

type ArtworkForm struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Rating      int     `json:"rating"`
}

func Artwork(form ArtworkForm) Errors {
	errs := Errors{}
	if strings.TrimSpace(form.Title) == "" {
		errs["title"] = "Title required"
	}
	if strings.TrimSpace(form.Description) == "" {
		errs["description"] = "Description required"
	}
	if form.Price <= 0 {
		errs["price"] = "Valid price required"
	}
	if form.Rating != 0 && (form.Rating < 1 || form.Rating > 5) {
		errs["rating"] = "Rating must be between 1 and 5"
	}
	return errs
}

func checkEmail(errs Errors, email string) {
	if strings.TrimSpace(email) == "" {
		errs["email"] = "Email is required"
	} else if !emailRe.MatchString(email) {
		errs["email"] = "Please enter a valid email"
	}
}
