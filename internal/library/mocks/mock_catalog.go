// Package mocks holds a GoMock mock of library.Catalog in mockgen's layout.
// Keep it in sync with the interface in internal/library/ports.go.
package mocks

import (
	book "booklibrary/internal/book"
	library "booklibrary/internal/library"
	reflect "reflect"

	gomock "github.com/golang/mock/gomock"
)

// MockCatalog is a mock of Catalog interface.
type MockCatalog struct {
	ctrl     *gomock.Controller
	recorder *MockCatalogMockRecorder
}

// MockCatalogMockRecorder is the mock recorder for MockCatalog.
type MockCatalogMockRecorder struct {
	mock *MockCatalog
}

// NewMockCatalog creates a new mock instance.
func NewMockCatalog(ctrl *gomock.Controller) *MockCatalog {
	mock := &MockCatalog{ctrl: ctrl}
	mock.recorder = &MockCatalogMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockCatalog) EXPECT() *MockCatalogMockRecorder {
	return m.recorder
}

// AddBook mocks base method.
func (m *MockCatalog) AddBook(arg0 book.Book) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AddBook", arg0)
	ret0, _ := ret[0].(error)
	return ret0
}

// AddBook indicates an expected call of AddBook.
func (mr *MockCatalogMockRecorder) AddBook(arg0 interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AddBook", reflect.TypeOf((*MockCatalog)(nil).AddBook), arg0)
}

// AllBooks mocks base method.
func (m *MockCatalog) AllBooks() *book.Collection {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AllBooks")
	ret0, _ := ret[0].(*book.Collection)
	return ret0
}

// AllBooks indicates an expected call of AllBooks.
func (mr *MockCatalogMockRecorder) AllBooks() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AllBooks", reflect.TypeOf((*MockCatalog)(nil).AllBooks))
}

// Authors mocks base method.
func (m *MockCatalog) Authors() []string {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Authors")
	ret0, _ := ret[0].([]string)
	return ret0
}

// Authors indicates an expected call of Authors.
func (mr *MockCatalogMockRecorder) Authors() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Authors", reflect.TypeOf((*MockCatalog)(nil).Authors))
}

// RemoveBook mocks base method.
func (m *MockCatalog) RemoveBook(arg0 book.Book) bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RemoveBook", arg0)
	ret0, _ := ret[0].(bool)
	return ret0
}

// RemoveBook indicates an expected call of RemoveBook.
func (mr *MockCatalogMockRecorder) RemoveBook(arg0 interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RemoveBook", reflect.TypeOf((*MockCatalog)(nil).RemoveBook), arg0)
}

// SearchByAuthor mocks base method.
func (m *MockCatalog) SearchByAuthor(arg0 string) *book.Collection {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SearchByAuthor", arg0)
	ret0, _ := ret[0].(*book.Collection)
	return ret0
}

// SearchByAuthor indicates an expected call of SearchByAuthor.
func (mr *MockCatalogMockRecorder) SearchByAuthor(arg0 interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SearchByAuthor", reflect.TypeOf((*MockCatalog)(nil).SearchByAuthor), arg0)
}

// SearchByGenre mocks base method.
func (m *MockCatalog) SearchByGenre(arg0 string) *book.Collection {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SearchByGenre", arg0)
	ret0, _ := ret[0].(*book.Collection)
	return ret0
}

// SearchByGenre indicates an expected call of SearchByGenre.
func (mr *MockCatalogMockRecorder) SearchByGenre(arg0 interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SearchByGenre", reflect.TypeOf((*MockCatalog)(nil).SearchByGenre), arg0)
}

// SearchByISBN mocks base method.
func (m *MockCatalog) SearchByISBN(arg0 string) *book.Collection {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SearchByISBN", arg0)
	ret0, _ := ret[0].(*book.Collection)
	return ret0
}

// SearchByISBN indicates an expected call of SearchByISBN.
func (mr *MockCatalogMockRecorder) SearchByISBN(arg0 interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SearchByISBN", reflect.TypeOf((*MockCatalog)(nil).SearchByISBN), arg0)
}

// SearchByYear mocks base method.
func (m *MockCatalog) SearchByYear(arg0 int) *book.Collection {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SearchByYear", arg0)
	ret0, _ := ret[0].(*book.Collection)
	return ret0
}

// SearchByYear indicates an expected call of SearchByYear.
func (mr *MockCatalogMockRecorder) SearchByYear(arg0 interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SearchByYear", reflect.TypeOf((*MockCatalog)(nil).SearchByYear), arg0)
}

// Statistics mocks base method.
func (m *MockCatalog) Statistics() library.Stats {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Statistics")
	ret0, _ := ret[0].(library.Stats)
	return ret0
}

// Statistics indicates an expected call of Statistics.
func (mr *MockCatalogMockRecorder) Statistics() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Statistics", reflect.TypeOf((*MockCatalog)(nil).Statistics))
}
