package response

import (
	"errors"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

var errNotDecimal = errors.New("source is not a decimal")

// Money is rendered with two fractional digits.
var copyOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: decimal.Decimal{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				d, ok := src.(decimal.Decimal)
				if !ok {
					return nil, errNotDecimal
				}
				return d.StringFixed(2), nil
			},
		},
	},
}

func copyView[T any](src any) (*T, error) {
	var dst T
	if err := copier.CopyWithOption(&dst, src, copyOption); err != nil {
		return nil, err
	}
	return &dst, nil
}
