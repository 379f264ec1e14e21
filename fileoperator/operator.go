// Package fileoperator writes derived address rows to spreadsheet files.
package fileoperator

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet rows are appended to.
const SheetName = "Sheet1"

// header is written as the first row of a new workbook.
var header = []interface{}{"path", "index", "type", "address", "public key"}

// AddressRow is one derived address.
type AddressRow struct {
	Path      string
	Index     uint32
	Type      string
	Address   string
	PublicKey string
}

func (r AddressRow) values() []interface{} {
	return []interface{}{r.Path, r.Index, r.Type, r.Address, r.PublicKey}
}

// SaveAddresses appends rows to SheetName of the workbook at savePath. The
// workbook is created with a header row if it does not exist yet.
func SaveAddresses(rows []AddressRow, savePath string) (err error) {
	f, err := openOrCreate(savePath)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	existing, err := f.GetRows(SheetName)
	if err != nil {
		return fmt.Errorf("read rows of %s: %w", savePath, err)
	}

	next := len(existing) + 1
	if next == 1 {
		if err := setRow(f, next, header); err != nil {
			return err
		}
		next++
	}

	for i, row := range rows {
		if err := setRow(f, next+i, row.values()); err != nil {
			return err
		}
	}

	if err := f.SaveAs(savePath); err != nil {
		return fmt.Errorf("save %s: %w", savePath, err)
	}
	log.Debugf("Appended %d address rows to %s", len(rows), savePath)

	return nil
}

func openOrCreate(savePath string) (*excelize.File, error) {
	_, err := os.Stat(savePath)
	switch {
	case err == nil:
		f, err := excelize.OpenFile(savePath)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", savePath, err)
		}
		return f, nil

	case errors.Is(err, fs.ErrNotExist):
		log.Infof("Creating workbook %s", savePath)
		return excelize.NewFile(), nil

	default:
		return nil, err
	}
}

func setRow(f *excelize.File, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(SheetName, cell, &values)
}
