package handlers

import (
	stderrors "errors"
	"fmt"
	"mime/multipart"
	"net/http"

	"sales-dashboard/internal/errors"
)

const (
	salesField = "sales"
	itemsField = "items"

	// uploads above this size are spooled to temporary files
	multipartMemory = 8 << 20
)

type uploads struct {
	sales multipart.File
	items multipart.File
}

func (u *uploads) Close() {
	if u.sales != nil {
		u.sales.Close()
	}
	if u.items != nil {
		u.items.Close()
	}
}

// readUploads opens the sales and items files of a multipart request. The
// caller must Close the result and call r.MultipartForm.RemoveAll.
func readUploads(r *http.Request) (*uploads, error) {
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		if appErr := errors.FromReport(err); appErr != err {
			return nil, appErr
		}
		return nil, errors.BadRequestWrap(err, "Expected a multipart form upload")
	}

	u := &uploads{}
	var err error
	if u.sales, err = openField(r, salesField); err != nil {
		return nil, err
	}
	if u.items, err = openField(r, itemsField); err != nil {
		u.Close()
		return nil, err
	}
	return u, nil
}

func openField(r *http.Request, field string) (multipart.File, error) {
	f, _, err := r.FormFile(field)
	if stderrors.Is(err, http.ErrMissingFile) {
		return nil, errors.Validation(fmt.Sprintf("Missing %q report upload", field))
	}
	if err != nil {
		return nil, errors.BadRequestWrap(err, fmt.Sprintf("Cannot read %q upload", field))
	}
	return f, nil
}

func cleanupForm(r *http.Request) {
	if r.MultipartForm != nil {
		_ = r.MultipartForm.RemoveAll()
	}
}
