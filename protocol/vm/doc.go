/*
Package vm describes the TEAL stack machine that compiled programs
run on: its opcodes and the program version each became available in,
the transaction and global fields, and the OnCompletion constants.

The machine itself is not implemented here. Check statically validates
assembly text against the tables in this package: every instruction
must name a known opcode available at the program's version with
well-formed immediate arguments, and every branch must target a label
declared exactly once.

Assembly text is a sequence of lines separated by OpSeparator. A line is
an instruction (a mnemonic followed by its immediates), a label
declaration of the form "name:", a "#pragma" directive, a "//" comment,
or blank.
*/
package vm
