package ast

import "strings"

// Class declares a class and its methods. Methods are Function
// statements; the interpreter treats the one named "init" as the
// constructor.
type Class struct {
	Name    string
	Methods []*Function
}

func (*Class) stmtNode() {}
func (c *Class) String() string {
	names := make([]string, len(c.Methods))
	for i, m := range c.Methods {
		names[i] = m.Name
	}
	return "class " + c.Name + " { " + strings.Join(names, ", ") + " }"
}
