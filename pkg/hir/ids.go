// Package hir contains the identifiers and item summaries produced by the
// upstream lowering stage.  The resolver only consumes them.
package hir

import "fmt"

// FileID identifies a source file within a workspace.
type FileID uint32

// ItemID identifies a type declaration (class, interface, enum, record or
// annotation) within a file.
type ItemID struct {
	File  FileID
	Index uint32
}

// String implements fmt.Stringer
func (id ItemID) String() string {
	return fmt.Sprintf("item(%d:%d)", id.File, id.Index)
}

// FieldID identifies a field declaration.
type FieldID struct {
	File  FileID
	Index uint32
}

// MethodID identifies a method declaration.
type MethodID struct {
	File  FileID
	Index uint32
}

// ConstructorID identifies a constructor declaration.
type ConstructorID struct {
	File  FileID
	Index uint32
}

// InitializerID identifies a static or instance initializer block.
type InitializerID struct {
	File  FileID
	Index uint32
}

// LocalID identifies a local variable inside a body.
type LocalID uint32

// BodyOwner is a declaration that owns a body of statements: a MethodID,
// ConstructorID or InitializerID.
type BodyOwner interface {
	bodyOwner()
}

// ParamOwner is a declaration with formal parameters: a MethodID or
// ConstructorID.
type ParamOwner interface {
	paramOwner()
}

func (MethodID) bodyOwner()      {}
func (ConstructorID) bodyOwner() {}
func (InitializerID) bodyOwner() {}

func (MethodID) paramOwner()      {}
func (ConstructorID) paramOwner() {}
