package caseconv

import (
	"go/ast"
	"go/parser"
	"go/token"
	"reflect"
	"sort"
	"testing"
)

func parseFuncs(t *testing.T, filename string) []string {
	fset := token.NewFileSet()
	af, err := parser.ParseFile(fset, filename, nil, parser.AllErrors)
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, d := range af.Decls {
		if fd, _ := d.(*ast.FuncDecl); fd != nil {
			if fd.Name == nil || fd.Recv != nil {
				continue
			}
			name := fd.Name.Name
			if ast.IsExported(name) {
				names = append(names, name)
			}
		}
	}
	sort.Strings(names)
	return names
}

// Test that the caseconv and strcase packages have the same API
func TestPackageParity(t *testing.T) {
	bytenames := parseFuncs(t, "caseconv.go")
	strnames := parseFuncs(t, "strcase/strcase.go")
	if !reflect.DeepEqual(bytenames, strnames) {
		t.Fatalf("The API of the caseconv and strcase packages differs:\n"+
			"caseconv: %q\n"+
			"strcase:  %q\n", bytenames, strnames)
	}
}
