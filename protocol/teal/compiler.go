package teal

import (
	"context"
	"encoding/hex"
	"sort"
	"strings"
	"sync"

	"github.com/davecgh/go-spew/spew"
	"github.com/golang/groupcache/lru"
	"golang.org/x/sync/singleflight"

	"tealc/log"
	"tealc/protocol/scope"
	"tealc/protocol/types"
	"tealc/protocol/vm"
)

func init() {
	log.SkipFunc("tealc/protocol/teal.logCompile")
}

// Compiler compiles programs and contracts, logging each
// compilation and caching the results. Concurrent requests for
// the same program share a single compilation.
// It is safe for concurrent use.
type Compiler struct {
	cfg    Config
	flight singleflight.Group

	mu    sync.Mutex // protects cache
	cache *lru.Cache
}

type cacheEntry struct {
	asm string
	err error
}

// NewCompiler returns a compiler configured by cfg.
func NewCompiler(cfg Config) *Compiler {
	c := &Compiler{cfg: cfg}
	if cfg.CacheSize > 0 {
		c.cache = lru.New(cfg.CacheSize)
	}
	return c
}

// NewProgram returns a program for the configured default version.
func (c *Compiler) NewProgram(body Expr) (*Program, error) {
	return NewProgram(c.cfg.DefaultVersion, body)
}

// CompileProgram compiles p, or returns the cached result of an
// earlier compilation of the same program.
func (c *Compiler) CompileProgram(ctx context.Context, p *Program) (string, error) {
	return c.compile(ctx, "program", p, Schemas{})
}

// CompileContract compiles both programs of ct concurrently.
func (c *Compiler) CompileContract(ctx context.Context, ct *Contract) (*CompiledContract, error) {
	return ct.compileWith(ctx, func(ctx context.Context, p *Program) (string, error) {
		name := "approval"
		if p == ct.ClearState {
			name = "clear-state"
		}
		return c.compile(ctx, name, p, ct.Schemas)
	})
}

func (c *Compiler) compile(ctx context.Context, name string, p *Program, schemas Schemas) (string, error) {
	key := Digest(p, schemas)
	keyHex := hex.EncodeToString(key[:])

	if e, ok := c.lookup(key); ok {
		logCompile(ctx, name, p, keyHex, "hit")
		return e.asm, e.err
	}

	v, _, _ := c.flight.Do(keyHex, func() (interface{}, error) {
		e := c.build(ctx, name, p, schemas, keyHex)
		c.add(key, e)
		return e, nil
	})
	e := v.(cacheEntry)
	return e.asm, e.err
}

// build compiles p in a new session and logs the outcome.
func (c *Compiler) build(ctx context.Context, name string, p *Program, schemas Schemas, keyHex string) cacheEntry {
	s := NewSession()
	ctx = log.WithSession(ctx, s.ID)
	env := TypeEnv{Global: schemas.Global.scope(), Local: schemas.Local.scope()}
	if c.cfg.Debug {
		log.Printkv(ctx, "program", name, "globals", fieldList(env.Global), "locals", fieldList(env.Local))
		log.Printf(ctx, "%s tree:\n%s", name, spew.Sdump(p.Body))
	}

	asm, err := p.compile(s, env)
	if err != nil {
		log.Error(ctx, err, "compiling ", name)
		return cacheEntry{err: err}
	}

	logCompile(ctx, name, p, keyHex, "miss", "instructions", instructionCount(asm))
	return cacheEntry{asm: asm}
}

// logCompile writes the summary entry of one compilation.
func logCompile(ctx context.Context, name string, p *Program, keyHex, cache string, keyvals ...interface{}) {
	kv := []interface{}{
		"program", name,
		"version", p.Version,
		"digest", keyHex,
		"cache", cache,
	}
	log.Printkv(ctx, append(kv, keyvals...)...)
}

// fieldList formats the fields in sc as name:type pairs
// in name order.
func fieldList(sc *scope.Scope[string, types.Type]) string {
	fields := make([]string, 0, sc.Len())
	sc.Each(func(name string, t types.Type) {
		fields = append(fields, name+":"+types.String(t))
	})
	sort.Strings(fields)
	return strings.Join(fields, ",")
}

func (c *Compiler) lookup(key [32]byte) (cacheEntry, bool) {
	if c.cache == nil {
		return cacheEntry{}, false
	}
	c.mu.Lock()
	v, ok := c.cache.Get(key)
	c.mu.Unlock()
	if !ok {
		return cacheEntry{}, false
	}
	return v.(cacheEntry), true
}

func (c *Compiler) add(key [32]byte, e cacheEntry) {
	if c.cache == nil {
		return
	}
	c.mu.Lock()
	c.cache.Add(key, e)
	c.mu.Unlock()
}

func instructionCount(asm string) int {
	insts, err := vm.Parse(asm)
	if err != nil {
		return 0
	}
	n := 0
	for _, inst := range insts {
		if inst.Label == "" {
			n++
		}
	}
	return n
}
