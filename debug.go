package spindle

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/danpasecinic/spindle/internal/typekey"
)

func Print(elements []Element) {
	Fprint(os.Stdout, elements)
}

func Fprint(w io.Writer, elements []Element) {
	if len(elements) == 0 {
		_, _ = fmt.Fprintln(w, "(no elements)")
		return
	}
	fprintIndented(w, elements, "")
}

func fprintIndented(w io.Writer, elements []Element, indent string) {
	for _, e := range elements {
		_, _ = fmt.Fprintf(w, "%s%s\n", indent, describe(e))
		if pe, ok := e.(*PrivateEnvironment); ok {
			fprintIndented(w, pe.Elements(), indent+"  ")
		}
	}
}

func Sprint(elements []Element) string {
	var sb strings.Builder
	Fprint(&sb, elements)
	return sb.String()
}

func describe(e Element) string {
	out := e.Accept(ElementVisitorFuncs{
		Binding: func(b *Binding) any {
			return describeBinding(b)
		},
		Message: func(m *Message) any {
			if m.Source() == "" {
				return "✗ " + m.Text()
			}
			return "✗ " + m.Text() + " (" + m.Source() + ")"
		},
		ScopeBinding: func(sb *ScopeBinding) any {
			return "· scope " + typekey.Of(sb.Tag()) + " ← " + typekey.FromValue(sb.Scope())
		},
		InterceptorBinding: func(ib *InterceptorBinding) any {
			return fmt.Sprintf("· interceptors (%d)", len(ib.Interceptors()))
		},
		TypeConverterBinding: func(tcb *TypeConverterBinding) any {
			return "· converter " + typekey.FromValue(tcb.Converter())
		},
		ProviderLookup: func(pl *ProviderLookup) any {
			return "· lookup " + pl.Key().String()
		},
		InjectionRequest: func(ir *InjectionRequest) any {
			return "· inject " + typekey.FromValue(ir.Instance())
		},
		StaticInjectionRequest: func(sir *StaticInjectionRequest) any {
			return "· inject static " + typekey.Of(sir.Type())
		},
		PrivateEnvironment: func(pe *PrivateEnvironment) any {
			return fmt.Sprintf("· private environment (%d exposed)", len(pe.ExposedKeys()))
		},
	})
	return out.(string)
}

func describeBinding(b *Binding) string {
	target := b.AcceptTarget(TargetVisitorFuncs{
		Instance: func(t *InstanceTarget) any {
			return fmt.Sprintf("instance %v", t.Instance())
		},
		ProviderInstance: func(t *ProviderInstanceTarget) any {
			return "provider " + typekey.FromValue(t.Provider())
		},
		ProviderKey: func(t *ProviderKeyTarget) any {
			return "provider for " + t.ProviderKey().String()
		},
		LinkedKey: func(t *LinkedKeyTarget) any {
			return t.LinkedKey().String()
		},
		Exposed: func(t *ExposedTarget) any {
			return "exposed from private environment"
		},
		Untargeted: func() any {
			return ""
		},
	}).(string)

	if target == "" {
		return "○ " + b.Key().String() + describeScoping(b)
	}
	return "● " + b.Key().String() + " ← " + target + describeScoping(b)
}

func describeScoping(b *Binding) string {
	out := b.AcceptScoping(ScopingVisitorFuncs{
		NoScoping: func() any {
			return ""
		},
		Scope: func(s Scope) any {
			return " in " + typekey.FromValue(s)
		},
		ScopeTag: func(tag reflect.Type) any {
			return " in " + typekey.Of(tag)
		},
		EagerSingleton: func() any {
			return " in eager singleton"
		},
	})
	return out.(string)
}

func PrintDOT(elements []Element) {
	FprintDOT(os.Stdout, elements)
}

func FprintDOT(w io.Writer, elements []Element) {
	var (
		order []string
		nodes = map[string]*dotNode{}
		edges [][2]string
	)
	collectDOT(elements, &order, nodes, &edges)

	_, _ = fmt.Fprintln(w, "digraph bindings {")
	_, _ = fmt.Fprintln(w, "  rankdir=LR;")
	_, _ = fmt.Fprintln(w, "  node [shape=box];")

	for _, id := range order {
		n := nodes[id]
		style := ""
		if n.filled {
			style = ", style=filled, fillcolor=lightblue"
		} else if n.dashed {
			style = ", style=dashed"
		}
		_, _ = fmt.Fprintf(w, "  %q [label=%q%s];\n", id, escapeLabel(id), style)
	}

	_, _ = fmt.Fprintln(w)

	for _, edge := range edges {
		_, _ = fmt.Fprintf(w, "  %q -> %q;\n", edge[0], edge[1])
	}

	_, _ = fmt.Fprintln(w, "}")
}

func SprintDOT(elements []Element) string {
	var sb strings.Builder
	FprintDOT(&sb, elements)
	return sb.String()
}

type dotNode struct {
	filled bool
	dashed bool
}

func collectDOT(elements []Element, order *[]string, nodes map[string]*dotNode, edges *[][2]string) {
	touch := func(id string) *dotNode {
		if n, ok := nodes[id]; ok {
			return n
		}
		n := &dotNode{}
		nodes[id] = n
		*order = append(*order, id)
		return n
	}

	for _, e := range elements {
		switch el := e.(type) {
		case *Binding:
			id := el.Key().String()
			node := touch(id)
			el.AcceptTarget(TargetVisitorFuncs{
				Instance: func(*InstanceTarget) any {
					node.filled = true
					return nil
				},
				ProviderInstance: func(*ProviderInstanceTarget) any {
					node.filled = true
					return nil
				},
				ProviderKey: func(t *ProviderKeyTarget) any {
					to := t.ProviderKey().String()
					touch(to)
					*edges = append(*edges, [2]string{id, to})
					return nil
				},
				LinkedKey: func(t *LinkedKeyTarget) any {
					to := t.LinkedKey().String()
					touch(to)
					*edges = append(*edges, [2]string{id, to})
					return nil
				},
				Exposed: func(*ExposedTarget) any {
					node.dashed = true
					return nil
				},
			})
		case *PrivateEnvironment:
			collectDOT(el.Elements(), order, nodes, edges)
		}
	}
}

func escapeLabel(s string) string {
	s = strings.ReplaceAll(s, "*", "")
	if idx := strings.LastIndex(s, "/"); idx != -1 {
		s = s[idx+1:]
	}
	return s
}
