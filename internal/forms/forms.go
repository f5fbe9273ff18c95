package forms

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Validation explicite des données de formulaires, découplée des modèles gorm.

var validate = validator.New()

var slugRegexp = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)

func init() {
	_ = validate.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugRegexp.MatchString(fl.Field().String())
	})
}

// PostForm champs modifiables d'un post (le texte est obligatoire)
type PostForm struct {
	Text    string `validate:"required,max=10000"`
	GroupID *uint  `validate:"omitempty,gt=0"`
}

// CommentForm commentaire d'un post
type CommentForm struct {
	Text string `validate:"required,max=2000"`
}

// GroupForm création d'un groupe (slug unique vérifié en base)
type GroupForm struct {
	Title       string `validate:"required,max=200"`
	Slug        string `validate:"required,max=40,slug"`
	Description string `validate:"required"`
}

// SignupForm inscription d'un utilisateur
type SignupForm struct {
	Email     string `validate:"required,email"`
	Password  string `validate:"required,min=8"`
	Username  string `validate:"required,max=150,slug"`
	Firstname string `validate:"max=150"`
	Lastname  string `validate:"max=150"`
	AvatarURL string `validate:"omitempty,url"`
	Bio       string `validate:"max=500"`
}

var fieldMessages = map[string]string{
	"required": "champ obligatoire",
	"max":      "trop long",
	"min":      "trop court",
	"email":    "email invalide",
	"url":      "URL invalide",
	"slug":     "caractères autorisés : lettres, chiffres, tirets",
	"gt":       "valeur invalide",
}

// Validate retourne les erreurs par champ, vide si le formulaire est valide
func Validate(form interface{}) map[string]string {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	fieldErrors := map[string]string{}
	for _, fe := range err.(validator.ValidationErrors) {
		msg, ok := fieldMessages[fe.Tag()]
		if !ok {
			msg = "valeur invalide"
		}
		fieldErrors[fe.Field()] = msg
	}
	return fieldErrors
}
