package spindle

type Element interface {
	Source() string
	Accept(v ElementVisitor) any

	isElement()
}
