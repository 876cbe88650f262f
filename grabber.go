package chronic

// GrabberKind selects which occurrence of a repeater an expression wants.
type GrabberKind string

const (
	GrabLast GrabberKind = "last"
	GrabThis GrabberKind = "this"
	GrabNext GrabberKind = "next"
)

// GrabberTag tags the words this, next and last.
type GrabberTag struct {
	Kind GrabberKind
}

func (g *GrabberTag) Matches(kind TagKind) bool {
	return kind == kindGrabber
}

func (g *GrabberTag) String() string {
	return "grabber-" + string(g.Kind)
}

var grabberWords = map[string]GrabberKind{
	"last": GrabLast,
	"this": GrabThis,
	"next": GrabNext,
}

func scanGrabbers(tokens []*Token) {
	for _, tok := range tokens {
		if kind, ok := grabberWords[tok.Word]; ok {
			tok.Tag(&GrabberTag{Kind: kind})
		}
	}
}
