package ir

const (
	traitPrefix  = "Proxy"
	getterPrefix = "get_"
	setterPrefix = "set_"
)

func TraitName(decl Declaration) string {
	return traitPrefix + decl.Name
}

func GetterName(field Field) string {
	return getterPrefix + field.Name
}

func SetterName(field Field) string {
	return setterPrefix + field.Name
}
