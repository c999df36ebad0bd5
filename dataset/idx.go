package dataset

import (
	"compress/gzip"
	"encoding/binary"
	"io"
	"os"
)

// ReadIDXImages はgzip圧縮されたIDX形式の画像ファイルを読み込む。
// byte(0-255) は float32(0.0-1.0) に変換される。
func ReadIDXImages(filename string) ([][]float32, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	gr, err := gzip.NewReader(f)
	if err != nil {
		return nil, err
	}
	defer gr.Close()

	// ヘッダー (16バイト)
	header := make([]byte, 16)
	if _, err := io.ReadFull(gr, header); err != nil {
		return nil, err
	}

	count := binary.BigEndian.Uint32(header[4:8])
	rows := binary.BigEndian.Uint32(header[8:12])
	cols := binary.BigEndian.Uint32(header[12:16])
	imageSize := int(rows * cols)

	images := make([][]float32, count)
	buf := make([]byte, imageSize)

	for i := range images {
		if _, err := io.ReadFull(gr, buf); err != nil {
			return nil, err
		}

		floatRow := make([]float32, imageSize)
		for j, b := range buf {
			floatRow[j] = float32(b) / 255.0
		}
		images[i] = floatRow
	}
	return images, nil
}

// ReadIDXLabels はgzip圧縮されたIDX形式のラベルファイルを読み込む。
func ReadIDXLabels(filename string) ([]float32, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	gr, err := gzip.NewReader(f)
	if err != nil {
		return nil, err
	}
	defer gr.Close()

	// ヘッダー (8バイト)
	header := make([]byte, 8)
	if _, err := io.ReadFull(gr, header); err != nil {
		return nil, err
	}

	count := binary.BigEndian.Uint32(header[4:8])

	byteLabels := make([]byte, count)
	if _, err := io.ReadFull(gr, byteLabels); err != nil {
		return nil, err
	}

	labels := make([]float32, count)
	for i, b := range byteLabels {
		labels[i] = float32(b)
	}
	return labels, nil
}
