// ==============================================================================================
// FILE: internal/pipeline/pipeline.go
// ==============================================================================================
// PACKAGE: pipeline
// PURPOSE: Drives the full source-discovery -> cache -> lex -> parse ->
//          evaluate sequence the CLI's build/run verbs need, carrying
//          forward original_source/src/compilation/compiler.rs's staged
//          Ready -> Tokenized -> Parsed -> Evaluated shape. Go has no
//          type-state idiom as clean as Rust's zero-sized markers, so the
//          stages are ordinary methods returning (*Pipeline, error) and the
//          sequencing/short-circuit-on-error discipline is enforced at the
//          call site, mirroring the teacher's own runFile: sequential,
//          returning early on error at each stage.
// ==============================================================================================

package pipeline

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"eloquence/ast"
	"eloquence/evaluator"
	"eloquence/internal/cache"
	"eloquence/internal/diagnostics"
	"eloquence/internal/project"
	"eloquence/lexer"
	"eloquence/object"
	"eloquence/parser"
	"eloquence/token"
)

// sourceFile pairs a discovered source path with its project-relative form,
// used both for intermediate-cache placement and deterministic ordering.
type sourceFile struct {
	abs string
	rel string
}

// Pipeline threads state through the Discover -> Tokenize -> Parse ->
// Evaluate stages for a single project directory.
type Pipeline struct {
	Root   string
	Log    *zap.SugaredLogger
	Env    *object.Environment
	files  []sourceFile
	tokens map[string][]token.Token
	program *ast.Program
}

// New constructs a pipeline rooted at dir, with builtins already registered
// into a fresh evaluation environment.
func New(dir string, log *zap.SugaredLogger) *Pipeline {
	env := object.NewEnvironment()
	object.RegisterBuiltins(env)
	return &Pipeline{Root: dir, Log: log, Env: env, tokens: map[string][]token.Token{}}
}

// Discover walks source/ beneath Root for *.prs files, in lexicographic
// traversal order of their project-relative paths (spec.md §5's determinism
// requirement for any parallel implementation's token-concatenation order;
// here the walk itself is sequential).
func (p *Pipeline) Discover() (*Pipeline, error) {
	sourceDir := filepath.Join(p.Root, project.SourceDir)
	var files []sourceFile
	err := filepath.WalkDir(sourceDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !strings.HasSuffix(path, project.SourceExtension) {
			return nil
		}
		rel, err := filepath.Rel(sourceDir, path)
		if err != nil {
			return err
		}
		files = append(files, sourceFile{abs: path, rel: rel})
		return nil
	})
	if err != nil {
		return p, &diagnostics.SourceError{Path: sourceDir, Err: err}
	}
	sort.Slice(files, func(i, j int) bool { return files[i].rel < files[j].rel })
	p.files = files
	if p.Log != nil {
		p.Log.Infow("discovered source files", "count", len(files), "source_dir", sourceDir)
	}
	return p, nil
}

// Tokenize lexes every discovered file, consulting the intermediate cache
// first and falling back to a fresh lex (then writing the cache entry) on
// any miss.
func (p *Pipeline) Tokenize() (*Pipeline, error) {
	intermediateDir := filepath.Join(p.Root, project.IntermediateDir)
	for _, f := range p.files {
		content, err := os.ReadFile(f.abs)
		if err != nil {
			return p, &diagnostics.SourceError{Path: f.abs, Err: err}
		}
		hash := cache.HashBytes(content)
		cachePath := cache.IntermediatePath(intermediateDir, f.rel)

		if entry, ok := cache.Load(cachePath); ok && cache.Valid(entry, hash) {
			p.tokens[f.rel] = entry.Tokens
			if p.Log != nil {
				p.Log.Infow("cache hit", "file", f.rel, "stage", "lex")
			}
			continue
		}

		toks := lexAll(string(content))
		p.tokens[f.rel] = toks
		if err := cache.Store(cachePath, hash, toks); err != nil {
			return p, &diagnostics.SourceError{Path: cachePath, Err: err}
		}
		if p.Log != nil {
			p.Log.Infow("cache miss, lexed fresh", "file", f.rel, "stage", "lex", "tokens", len(toks))
		}
	}
	return p, nil
}

func lexAll(input string) []token.Token {
	l := lexer.New(input)
	var toks []token.Token
	for tok := l.NextToken(); ; tok = l.NextToken() {
		toks = append(toks, tok)
		if tok.Type == token.EOF {
			break
		}
	}
	return toks
}

// Parse concatenates every discovered file's tokens, in the sorted
// discovery order Tokenize populated them in, and runs the parser over the
// resulting stream — never re-reading or re-lexing source text, so a cache
// hit in Tokenize truly means the lexer is not invoked again. Per-file EOF
// markers are dropped from the concatenation and replaced by a single
// trailing EOF, matching spec.md §6's "concatenated in discovery order"
// multi-file requirement.
func (p *Pipeline) Parse() (*Pipeline, error) {
	var all []token.Token
	for _, f := range p.files {
		toks := p.tokens[f.rel]
		if len(toks) > 0 && toks[len(toks)-1].Type == token.EOF {
			toks = toks[:len(toks)-1]
		}
		all = append(all, toks...)
	}
	endLine := 0
	if n := len(all); n > 0 {
		endLine = all[n-1].Line
	}
	all = append(all, token.Token{Type: token.EOF, Line: endLine})

	l := lexer.FromTokens(all)
	ps := parser.New(l)
	program := ps.ParseProgram()

	if errs := ps.Errors(); len(errs) > 0 {
		var compilerErrs []diagnostics.CompilerError
		for _, msg := range errs {
			compilerErrs = append(compilerErrs, &diagnostics.LexicalError{Msg: msg})
		}
		return p, diagnostics.NewMultiError(compilerErrs)
	}

	p.program = program
	if p.Log != nil {
		p.Log.Infow("parsed project", "files", len(p.files), "tokens", len(all), "stage", "parse")
	}
	return p, nil
}

// Evaluate runs the interpreter over the parsed program against the
// pipeline's environment.
func (p *Pipeline) Evaluate() (*Pipeline, error) {
	if p.program == nil {
		return p, fmt.Errorf("pipeline: Evaluate called before Parse produced a program")
	}
	result, err := evaluator.Eval(p.program, p.Env)
	if err != nil {
		return p, &diagnostics.RuntimeError{Eval: diagnostics.NewEvaluationError(err.Error())}
	}
	if p.Log != nil {
		p.Log.Infow("evaluated program", "stage", "evaluate", "result", result.String())
	}
	return p, nil
}
