package model

// User is a USER line of an OPERLOG body.
type User struct {
	PIN        string `json:"pin" yaml:"pin"`
	Name       string `json:"name" yaml:"name"`
	Password   string `json:"password" yaml:"password"`
	Card       string `json:"card" yaml:"card"`
	Group      string `json:"group" yaml:"group"`
	TZ         string `json:"tz" yaml:"tz"`
	Privileges string `json:"privileges" yaml:"privileges"`
	Verify     string `json:"verify" yaml:"verify"`
	ViceCard   string `json:"vice_card" yaml:"vice_card"`
	Raw        string `json:"raw" yaml:"raw"`
}

var userMapping = fieldMapping[User]{
	renames: map[string]string{
		"PIN":      "pin",
		"Passwd":   "password",
		"Card":     "card",
		"Grp":      "group",
		"TZ":       "tz",
		"Pri":      "privileges",
		"Verify":   "verify",
		"ViceCard": "vice_card",
	},
	fields: map[string]fieldSetter[User]{
		"pin":        func(u *User, v string) { u.PIN = v },
		"name":       func(u *User, v string) { u.Name = v },
		"password":   func(u *User, v string) { u.Password = v },
		"card":       func(u *User, v string) { u.Card = v },
		"group":      func(u *User, v string) { u.Group = v },
		"tz":         func(u *User, v string) { u.TZ = v },
		"privileges": func(u *User, v string) { u.Privileges = v },
		"verify":     func(u *User, v string) { u.Verify = v },
		"vice_card":  func(u *User, v string) { u.ViceCard = v },
	},
}

// DecodeUser decodes the tab-separated Key=Value remainder of a USER line.
func DecodeUser(line string) User {
	u := User{Raw: line}
	userMapping.fill(&u, parseKeyValues(line))
	return u
}
