package translate

import (
	"golang.org/x/text/language"
)

// catalog holds the translations, by language and en-US format.
var catalog = map[language.Tag]map[string]string{
	language.German: {
		"Output saved to %v\n":                "Ausgabe gespeichert in %v\n",
		"line %d '%v' %v":                     "Zeile %d '%v' %v",
		"line %d %v: %v":                      "Zeile %d %v: %v",
		"invalid mnemonic '%v'":               "ungültige Mnemonik '%v'",
		"label %v missing":                    "Marke %v fehlt",
		"program too long":                    "Programm zu lang",
		"immediate missing":                   "Direktwert fehlt",
		"register missing":                    "Register fehlt",
		"'%v' is not a register":              "'%v' ist kein Register",
		"'%v' is not a number":                "'%v' ist keine Zahl",
		"unknown format '%v'":                 "unbekanntes Format '%v'",
		"define is not NAME=VALUE":            "Definition ist nicht NAME=WERT",
		"branch to %v offset %d out of range": "Sprung nach %v mit Abstand %d außerhalb des Bereichs",
	},
}
