/*
Package teal compiles expression trees to TEAL assembly.

A program is an Expr tree. Functions of several arguments are curried:
the comparison 6 > 2 is the operator > applied first to its right
operand and then to its left,

	Call(GT, Int(2), Int(6))

or, equivalently, Binop(GT, Int(6), Int(2)).

Compilation has two passes over the tree, both run by a Session.
Resolve infers the type of every node by unification (see package
types). Compile lowers the tree to assembly text. An Apply node compiles
its argument, pushes the resulting text onto an operand Stack, and then
compiles its function with that stack; the node that finally consumes
the operands (an operator, a state access, an If, a Ret) pops them and
emits them in the order the machine expects. The stack is thus a
compile-time mirror of the machine's runtime operand stack.

Program and Contract tie the passes together: they type-check first,
then generate code, check the result against the opcode table of the
target version, and add the version pragma. Compiler adds caching and
logging on top.
*/
package teal
