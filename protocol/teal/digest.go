package teal

import (
	"encoding/binary"
	"fmt"
	"io"

	"golang.org/x/crypto/sha3"
)

// Node tags of the digest encoding.
const (
	tagNil byte = iota
	tagInt
	tagBytes
	tagBinaryOp
	tagUnaryOp
	tagApply
	tagLet
	tagConst
	tagCond
	tagIf
	tagSeq
	tagRet
	tagRVal
	tagLVal
	tagTxn
	tagOnComplete
)

// Digest returns the SHA3-256 hash identifying p compiled
// against schemas. It covers the version, the program tree,
// and the state fields in scope.
//
// The tree is hashed in a prefix encoding: every node starts
// with a tag byte, and every name and byte string carries its
// length, so distinct trees never share an encoding.
func Digest(p *Program, schemas Schemas) [32]byte {
	h := sha3.New256()
	writeUvarint(h, p.Version)
	writeExpr(h, p.Body)
	for _, s := range []Schema{schemas.Global, schemas.Local} {
		fields := s.Fields()
		writeUvarint(h, uint64(len(fields)))
		for _, name := range fields {
			writeString(h, name)
			writeUvarint(h, uint64(s[name]))
		}
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

func writeExpr(w io.Writer, e Expr) {
	switch e := e.(type) {
	case nil:
		w.Write([]byte{tagNil})
	case Int:
		w.Write([]byte{tagInt})
		writeUvarint(w, uint64(e))
	case Bytes:
		w.Write([]byte{tagBytes})
		writeString(w, string(e))
	case BinaryOp:
		w.Write([]byte{tagBinaryOp, byte(e)})
	case UnaryOp:
		w.Write([]byte{tagUnaryOp, byte(e)})
	case *Apply:
		w.Write([]byte{tagApply})
		writeExpr(w, e.Fn)
		writeExpr(w, e.Arg)
	case *Let:
		w.Write([]byte{tagLet})
		writeString(w, e.Name)
		writeExpr(w, e.Value)
		writeExpr(w, e.Body)
	case *Const:
		w.Write([]byte{tagConst})
		writeString(w, e.Name)
		writeExpr(w, e.Value)
		writeExpr(w, e.Body)
	case *Cond:
		for arm := e; arm != nil; arm = arm.Next {
			w.Write([]byte{tagCond})
			writeExpr(w, arm.Test)
			writeExpr(w, arm.Body)
		}
		w.Write([]byte{tagNil})
	case *If:
		w.Write([]byte{tagIf})
		writeExpr(w, e.Then)
		writeExpr(w, e.Else)
	case *Seq:
		w.Write([]byte{tagSeq})
		writeExpr(w, e.Head)
		writeExpr(w, e.Tail)
	case Ret:
		w.Write([]byte{tagRet})
	case RVal:
		w.Write([]byte{tagRVal, byte(e.Var.Kind)})
		writeString(w, e.Var.Name)
	case LVal:
		w.Write([]byte{tagLVal, byte(e.Var.Kind)})
		writeString(w, e.Var.Name)
	case Txn:
		w.Write([]byte{tagTxn, byte(e.Field), e.Index})
	case OnComplete:
		w.Write([]byte{tagOnComplete, byte(e.Action)})
	default:
		panic(fmt.Errorf("teal: unknown expression type %T", e))
	}
}

func writeUvarint(w io.Writer, n uint64) {
	var buf [binary.MaxVarintLen64]byte
	w.Write(buf[:binary.PutUvarint(buf[:], n)])
}

func writeString(w io.Writer, s string) {
	writeUvarint(w, uint64(len(s)))
	io.WriteString(w, s)
}
