package dataset

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/sw965/omw/encoding/gobx"
	"github.com/sw965/uguisu/blas32/vector"
	"gonum.org/v1/gonum/blas/blas32"
)

const (
	baseURL = "https://github.com/sw965/uguisu/releases/download/v0.1.0-data/"

	mnistFile = "mnist.gob"
)

// Mnist は訓練用とテスト用の画像・ラベルを保持する。
// 画像は1枚あたり784要素で、[0, 1] にスケール済み。
type Mnist struct {
	TrainImages [][]float32
	TrainLabels []float32
	TestImages  [][]float32
	TestLabels  []float32
}

// LoadMnist はMNISTデータを読み込む。
// ローカルにキャッシュが無ければ、ダウンロードする。
func LoadMnist() (Mnist, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Mnist{}, fmt.Errorf("ホームディレクトリの取得に失敗: %w", err)
	}

	dataDir := filepath.Join(home, ".uguisu_dataset")
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return Mnist{}, err
	}

	path := filepath.Join(dataDir, mnistFile)
	if err := ensureFile(path, baseURL+mnistFile); err != nil {
		return Mnist{}, err
	}

	return gobx.Load[Mnist](path)
}

func ensureFile(path, url string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	fmt.Printf("Downloading %s...\n", url)
	resp, err := http.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("bad status: %s", resp.Status)
	}

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, resp.Body)
	return err
}

// Normalize は各ピクセルを (x - mean) / std で変換する。破壊的。
func Normalize(imgs [][]float32, mean, std float32) {
	for _, img := range imgs {
		for i := range img {
			img[i] = (img[i] - mean) / std
		}
	}
}

func OneHot(label float32, n int) blas32.Vector {
	vec := vector.NewZeros(n)
	vec.Data[int(label)] = 1.0
	return vec
}

func OneHotLabels(labels []float32, n int) []blas32.Vector {
	vecs := make([]blas32.Vector, len(labels))
	for i, label := range labels {
		vecs[i] = OneHot(label, n)
	}
	return vecs
}

func ToVectors(imgs [][]float32) []blas32.Vector {
	vecs := make([]blas32.Vector, len(imgs))
	for i, img := range imgs {
		vecs[i] = vector.New(img)
	}
	return vecs
}

// ToBatch は imgs[i:i+n] を1行1サンプルの行列にまとめる。
func ToBatch(imgs [][]float32, i, n int) (blas32.General, error) {
	if i+n > len(imgs) {
		return blas32.General{}, fmt.Errorf("画像の枚数が足りないため、バッチを作れません。")
	}

	cols := len(imgs[i])
	gen := blas32.General{
		Rows:   n,
		Cols:   cols,
		Stride: cols,
		Data:   make([]float32, n*cols),
	}

	for r := 0; r < n; r++ {
		copy(gen.Data[r*cols:(r+1)*cols], imgs[i+r])
	}
	return gen, nil
}
