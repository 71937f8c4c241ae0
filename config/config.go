package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"axiapac.com/iclock/utils"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

const ssmScheme = "ssm://"

// Output formats of the dump tool.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
	FormatCSV  = "csv"
)

type Config struct {
	// Timezone is an IANA name or an offset in seconds east of UTC.
	Timezone string `yaml:"timezone" validate:"omitempty,location"`
	Format   string `yaml:"format" validate:"required,oneof=yaml json csv"`
	XLSX     string `yaml:"xlsx" validate:"omitempty,endswith=.xlsx"`
}

func Default() Config {
	return Config{Format: FormatYAML}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
	})
	_ = v.RegisterValidation("location", func(fl validator.FieldLevel) bool {
		_, err := utils.LoadLocation(fl.Field().String())
		return err == nil
	})
	return v
}

// Load reads YAML from a file path or from an SSM parameter given as
// "ssm://name", then applies ICLOCK_TIMEZONE and ICLOCK_FORMAT overrides.
// An empty source yields the defaults.
func Load(ctx context.Context, source string) (Config, error) {
	cfg := Default()

	var data []byte
	var err error
	switch {
	case source == "":
	case strings.HasPrefix(source, ssmScheme):
		data, err = readParameter(ctx, strings.TrimPrefix(source, ssmScheme))
	default:
		data, err = os.ReadFile(source)
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", source, err)
	}
	return parse(data, cfg)
}

func parse(data []byte, cfg Config) (Config, error) {
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal yaml: %w", err)
	}
	if v := os.Getenv("ICLOCK_TIMEZONE"); v != "" {
		cfg.Timezone = v
	}
	if v := os.Getenv("ICLOCK_FORMAT"); v != "" {
		cfg.Format = v
	}
	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %s", ErrInvalidConfig, FormatValidationError(err))
	}
	return cfg, nil
}

func readParameter(ctx context.Context, name string) ([]byte, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := ssm.NewFromConfig(cfg)

	out, err := client.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(name),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("get parameter: %w", err)
	}
	return []byte(aws.ToString(out.Parameter.Value)), nil
}

// FormatValidationError renders validator errors one field at a time.
func FormatValidationError(err error) string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err.Error()
	}
	var out []string
	for _, fe := range ve {
		out = append(out, formatFieldError(fe))
	}
	return strings.Join(out, ", ")
}

func formatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("Field '%s' is required", fe.Field())
	case "oneof":
		return fmt.Sprintf("Field '%s' must be one of %s", fe.Field(), fe.Param())
	case "endswith":
		return fmt.Sprintf("Field '%s' must end with %s", fe.Field(), fe.Param())
	case "location":
		return fmt.Sprintf("Field '%s' must be a timezone name or offset in seconds", fe.Field())
	}
	return fmt.Sprintf("Field '%s' failed validation for '%s'", fe.Field(), fe.Tag())
}
