package rewrite

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	m "github.com/mouse-blink/wle-js-upgrade/internal/model"
)

// ErrInvalidTypeName is returned when no class identifier can be derived
// from a registration type name.
var ErrInvalidTypeName = errors.New("type name yields no class identifier")

const (
	registrationNamespace = "WL"
	registrationFunc      = "registerComponent"
	componentBase         = "Component"
	propertyTypeSymbol    = "Type"
)

// registration is a legacy registration call located in a document.
type registration struct {
	start      int // first byte of the call
	end        int // first byte after the statement
	typeName   string
	properties m.ScopeSpan
	methods    *m.ScopeSpan
}

func (r registration) definition(doc string) m.ComponentDefinition {
	def := m.ComponentDefinition{
		TypeName:       r.typeName,
		PropertiesText: r.properties.Inner(doc),
		Span:           m.ScopeSpan{Start: r.start, End: r.end - 1},
	}

	if r.methods != nil {
		def.MethodsText = r.methods.Inner(doc)
	}

	return def
}

// FindComponents lists the legacy registrations of doc in order of appearance.
func FindComponents(doc string) ([]m.ComponentDefinition, error) {
	var defs []m.ComponentDefinition

	for cursor := 0; ; {
		reg, ok, err := nextRegistration(doc, cursor)
		if err != nil {
			return nil, err
		}

		if !ok {
			return defs, nil
		}

		defs = append(defs, reg.definition(doc))
		cursor = reg.end
	}
}

// RewriteComponents replaces every legacy registration call of doc with a
// class declaration. Text outside the calls is kept verbatim.
func RewriteComponents(doc string, ctx *m.RewriteContext, logger *slog.Logger) (string, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	var b strings.Builder

	b.Grow(len(doc))

	cursor := 0

	for {
		reg, ok, err := nextRegistration(doc, cursor)
		if err != nil {
			return "", err
		}

		if !ok {
			break
		}

		class, err := renderClass(doc, reg, ctx)
		if err != nil {
			return "", err
		}

		logger.Info("component found", "type", reg.typeName, "class", ClassName(reg.typeName))
		ctx.Components = append(ctx.Components, reg.typeName)

		b.WriteString(doc[cursor:reg.start])
		b.WriteString(class)

		cursor = reg.end
	}

	b.WriteString(doc[cursor:])

	return b.String(), nil
}

func renderClass(doc string, reg registration, ctx *m.RewriteContext) (string, error) {
	className := ClassName(reg.typeName)
	if className == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidTypeName, reg.typeName)
	}

	properties := propertyTypeRule.Apply(reg.properties.Inner(doc), ctx)

	methods := ""

	if reg.methods != nil {
		var err error

		methods, err = RewriteFunctions(reg.methods.Inner(doc), ctx)
		if err != nil {
			return "", err
		}
	}

	ctx.Engine.Add(componentBase)

	var b strings.Builder

	fmt.Fprintf(&b, "export class %s extends %s {\n", className, componentBase)
	fmt.Fprintf(&b, "    static TypeName = '%s';\n", reg.typeName)
	fmt.Fprintf(&b, "    static Properties = {%s};\n", properties)
	b.WriteString(methods)
	b.WriteByte('}')

	return b.String(), nil
}

// nextRegistration finds the first registration call at or after from.
func nextRegistration(doc string, from int) (registration, bool, error) {
	for i := from; i < len(doc); {
		if next := skipLiteral(doc, i); next != i {
			i = next
			continue
		}

		if !isIdentStart(doc[i]) || !atWordStart(doc, i) {
			i++
			continue
		}

		reg, ok := matchRegistrationHead(doc, i)
		if !ok {
			i += len(readIdent(doc, i))
			continue
		}

		if err := completeRegistration(doc, &reg); err != nil {
			return registration{}, false, err
		}

		return reg, true, nil
	}

	return registration{}, false, nil
}

// matchRegistrationHead recognizes
//
//	WL.registerComponent('type-name', {
//
// at i and fills in the type name and the opening brace of the properties.
func matchRegistrationHead(doc string, i int) (registration, bool) {
	if readIdent(doc, i) != registrationNamespace {
		return registration{}, false
	}

	k := skipSpace(doc, i+len(registrationNamespace))
	if k >= len(doc) || doc[k] != '.' {
		return registration{}, false
	}

	k = skipSpace(doc, k+1)
	if readIdent(doc, k) != registrationFunc {
		return registration{}, false
	}

	k = skipSpace(doc, k+len(registrationFunc))
	if k >= len(doc) || doc[k] != '(' {
		return registration{}, false
	}

	k = skipSpace(doc, k+1)
	if k >= len(doc) || (doc[k] != '\'' && doc[k] != '"' && doc[k] != '`') {
		return registration{}, false
	}

	quote := doc[k]

	nameEnd := strings.IndexByte(doc[k+1:], quote)
	if nameEnd <= 0 {
		return registration{}, false
	}

	typeName := doc[k+1 : k+1+nameEnd]
	if strings.ContainsAny(typeName, "\n\\") {
		return registration{}, false
	}

	k = skipSpace(doc, k+1+nameEnd+1)
	if k >= len(doc) || doc[k] != ',' {
		return registration{}, false
	}

	k = skipSpace(doc, k+1)
	if k >= len(doc) || doc[k] != '{' {
		return registration{}, false
	}

	return registration{
		start:      i,
		typeName:   typeName,
		properties: m.ScopeSpan{Start: k},
	}, true
}

// completeRegistration matches the properties scope, the optional methods
// object and the end of the statement.
func completeRegistration(doc string, reg *registration) error {
	propsEnd, err := FindScopeEnd(doc, reg.properties.Start)
	if err != nil {
		return err
	}

	reg.properties.End = propsEnd
	k := skipTrivia(doc, propsEnd+1)

	if k < len(doc) && doc[k] == ',' {
		k = skipTrivia(doc, k+1)
	}

	if k < len(doc) && doc[k] == '{' {
		methods, err := FindScope(doc, k)
		if err != nil {
			return err
		}

		reg.methods = &methods
		k = skipTrivia(doc, methods.End+1)

		if k < len(doc) && doc[k] == ',' {
			k = skipTrivia(doc, k+1)
		}
	}

	if k < len(doc) && doc[k] == ')' {
		k++

		for k < len(doc) && (doc[k] == ' ' || doc[k] == '\t') {
			k++
		}

		if k < len(doc) && doc[k] == ';' {
			k++
		}
	} else {
		// No closing parenthesis where one was expected; keep everything after
		// the last matched scope.
		k = propsEnd + 1
		if reg.methods != nil {
			k = reg.methods.End + 1
		}
	}

	reg.end = k

	return nil
}
