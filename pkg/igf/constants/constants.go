// Package constants defines shared constants and configuration values
// used throughout the IGF view framework.
package constants

// RowWidth is the number of slots in one grid row. Every surface size
// must be a multiple of this.
const RowWidth = 9

// MaxRows is the largest number of rows a reference host surface supports.
const MaxRows = 6

// DefaultItemsPerPage is the page size used by paged views unless
// overridden via SetItemsPerPage.
const DefaultItemsPerPage = 9
