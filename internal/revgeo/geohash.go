package revgeo

// 文档注释：轻量 geohash 编码（base32）
// 背景：仅用作命中缓存键；精度 6 字符约 1.2km，7 字符约 150m。
var base32 = []byte("0123456789bcdefghjkmnpqrstuvwxyz")

func encodeGeohash(lat, lon float64, precision int) string {
	latInt := [2]float64{-90, 90}
	lonInt := [2]float64{-180, 180}
	bits := [5]int{16, 8, 4, 2, 1}
	bit, ch := 0, 0
	even := true
	out := make([]byte, 0, precision)
	for len(out) < precision {
		if even {
			mid := (lonInt[0] + lonInt[1]) / 2
			if lon >= mid {
				ch |= bits[bit]
				lonInt[0] = mid
			} else {
				lonInt[1] = mid
			}
		} else {
			mid := (latInt[0] + latInt[1]) / 2
			if lat >= mid {
				ch |= bits[bit]
				latInt[0] = mid
			} else {
				latInt[1] = mid
			}
		}
		even = !even
		if bit < 4 {
			bit++
		} else {
			out = append(out, base32[ch])
			bit, ch = 0, 0
		}
	}
	return string(out)
}
