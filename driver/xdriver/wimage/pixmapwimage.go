package wimage

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/jmigpin/histogfx/util/imageutil"
	"github.com/pkg/errors"
)

// Image kept client side, sent to a server pixmap and then copied to the window.
type PixmapWImage struct {
	opt        *Options
	pixId      xproto.Pixmap
	pixCreated bool
	img        *imageutil.BGRA
}

func NewPixmapWImage(opt *Options) (*PixmapWImage, error) {
	wi := &PixmapWImage{opt: opt}

	pixId, err := xproto.NewPixmapId(opt.Conn)
	if err != nil {
		return nil, errors.Wrap(err, "pixmap id")
	}
	wi.pixId = pixId

	// initial image
	r := image.Rect(0, 0, 1, 1)
	if err := wi.Resize(r); err != nil {
		return nil, err
	}
	return wi, nil
}

func (wi *PixmapWImage) Close() error {
	wi.img = &imageutil.BGRA{}
	if wi.pixCreated {
		wi.pixCreated = false
		return xproto.FreePixmapChecked(wi.opt.Conn, wi.pixId).Check()
	}
	return nil
}

//----------

func (wi *PixmapWImage) Resize(r image.Rectangle) error {
	if r.Dx() <= 0 || r.Dy() <= 0 {
		return fmt.Errorf("pixmapwimage: bad size: %v", r)
	}
	if wi.pixCreated {
		err := xproto.FreePixmapChecked(wi.opt.Conn, wi.pixId).Check()
		if err != nil {
			return errors.Wrap(err, "free pixmap")
		}
		wi.pixCreated = false
	}

	err := xproto.CreatePixmapChecked(
		wi.opt.Conn,
		wi.opt.ScreenInfo.RootDepth,
		wi.pixId,
		xproto.Drawable(wi.opt.Window),
		uint16(r.Dx()),
		uint16(r.Dy())).Check()
	if err != nil {
		return errors.Wrap(err, "create pixmap")
	}
	wi.pixCreated = true

	wi.img = imageutil.NewBGRA(r)
	return nil
}

//----------

func (wi *PixmapWImage) Image() draw.Image {
	return wi.img
}

func (wi *PixmapWImage) PutImage(r image.Rectangle) error {
	r = r.Intersect(wi.img.Bounds())
	if r.Empty() {
		return nil
	}

	// X max data length = (2^16) * 4 = 262144, need to send it in chunks
	putImgReqSize := 28
	maxReqSize := (1 << 16) * 4
	maxSize := (maxReqSize - putImgReqSize) / 4
	if r.Dx() > maxSize {
		return fmt.Errorf("pixmapwimage: dx>max, %v>%v", r.Dx(), maxSize)
	}
	xsize := r.Dx()
	ysize := maxSize / xsize

	for minY := r.Min.Y; minY < r.Max.Y; minY += ysize {
		h := min(ysize, r.Max.Y-minY)
		data := make([]uint8, 0, xsize*h*4)
		for y := minY; y < minY+h; y++ {
			data = append(data, wi.img.RowPix(y, r.Min.X, r.Max.X)...)
		}
		_ = xproto.PutImage( // unchecked (errors handled in the event loop)
			wi.opt.Conn,
			xproto.ImageFormatZPixmap,
			xproto.Drawable(wi.pixId),
			wi.opt.GCtx,
			uint16(xsize), uint16(h),
			int16(r.Min.X), int16(minY),
			0, // left pad, must be 0 for ZPixmap format
			wi.opt.ScreenInfo.RootDepth,
			data)
	}

	// pixmap to window
	return xproto.CopyAreaChecked(
		wi.opt.Conn,
		xproto.Drawable(wi.pixId),
		xproto.Drawable(wi.opt.Window),
		wi.opt.GCtx,
		int16(r.Min.X), int16(r.Min.Y),
		int16(r.Min.X), int16(r.Min.Y),
		uint16(r.Dx()), uint16(r.Dy())).Check()
}
