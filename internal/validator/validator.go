package validator

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	govalidator "github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/stemsi/schedule-bot/internal/model"
)

// ErrInvalidLesson wraps every rejected timetable row.
var ErrInvalidLesson = errors.New("invalid lesson")

var hhmmPattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

var (
	// trans translates errors produced by Gin's binding engine.
	trans ut.Translator = newTranslator()

	lessonOnce     sync.Once
	lessonValidate *govalidator.Validate
	lessonTrans    ut.Translator
)

// newTranslator returns a fresh English translator. Each validator instance
// needs its own because translations are registered per translator.
func newTranslator() ut.Translator {
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	t, _ := uni.GetTranslator("en")
	return t
}

// Setup registers the validator with English translations on Gin's binding engine.
// Call once during application startup.
func Setup() {
	if v, ok := binding.Validator.Engine().(*govalidator.Validate); ok {
		configure(v, trans, "form")
	}
}

// configure applies field naming, custom tags and translations to v.
func configure(v *govalidator.Validate, t ut.Translator, nameTag string) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get(nameTag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	_ = v.RegisterValidation("hhmm", func(fl govalidator.FieldLevel) bool {
		return hhmmPattern.MatchString(fl.Field().String())
	})

	_ = en_translations.RegisterDefaultTranslations(v, t)
	_ = v.RegisterTranslation("hhmm", t,
		func(ut ut.Translator) error {
			return ut.Add("hhmm", "{0} must be a time in HH:MM format", true)
		},
		func(ut ut.Translator, fe govalidator.FieldError) string {
			t, _ := ut.T("hhmm", fe.Field())
			return t
		},
	)
}

func lessonValidator() *govalidator.Validate {
	lessonOnce.Do(func() {
		lessonValidate = govalidator.New()
		lessonTrans = newTranslator()
		configure(lessonValidate, lessonTrans, "json")
	})
	return lessonValidate
}

// ValidateLesson checks a timetable row before it is stored: field formats,
// ranges, and that the lesson does not end before it starts.
func ValidateLesson(seed model.LessonSeed) error {
	if err := lessonValidator().Struct(seed); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidLesson, joinFields(translate(err, lessonTrans)))
	}
	if seed.EndTime < seed.StartTime {
		return fmt.Errorf("%w: end_time %s is before start_time %s", ErrInvalidLesson, seed.EndTime, seed.StartTime)
	}
	return nil
}

// TranslateErrors takes a binding/validation error and returns a map of
// field name → human-readable error message. If the error is not a
// validation error, it returns a single-key map with "detail".
func TranslateErrors(err error) map[string]string {
	return translate(err, trans)
}

func translate(err error, t ut.Translator) map[string]string {
	fields := make(map[string]string)

	var ve govalidator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			fields[fe.Field()] = fe.Translate(t)
		}
		return fields
	}

	// Not a validation error (e.g., a malformed query value).
	fields["detail"] = err.Error()
	return fields
}

// BindQuery binds and validates query parameters into dst.
// Returns nil on success or a translated field error map on failure.
func BindQuery(c *gin.Context, dst interface{}) map[string]string {
	if err := c.ShouldBindQuery(dst); err != nil {
		return TranslateErrors(err)
	}
	return nil
}

func joinFields(fields map[string]string) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		msgs = append(msgs, fields[k])
	}
	return strings.Join(msgs, "; ")
}
