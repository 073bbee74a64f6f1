package utils

import (
	"github.com/gertd/go-pluralize"
	"github.com/iancoleman/strcase"
)

var (
	plurClient *pluralize.Client
)

func SnakeCase(s string) string {
	return strcase.ToSnake(s)
}

func Plural(s string) string {
	return plurClient.Plural(s)
}

// SlotKey turns a type name into a slot key, "PetStore" -> "pet_stores".
func SlotKey(typeName string) string {
	if typeName == "" {
		return ""
	}
	return Plural(SnakeCase(typeName))
}

func init() {
	strcase.ConfigureAcronym("API", "api")
	strcase.ConfigureAcronym("ID", "id")
	plurClient = pluralize.NewClient()
}
