package bitboard

const (
	Full  Bitboard = 0x_FF_FF_FF_FF_FF_FF_FF_FF
	Empty Bitboard = 0x_00_00_00_00_00_00_00_00

	LightSquares Bitboard = 0x_55_AA_55_AA_55_AA_55_AA
	DarkSquares  Bitboard = 0x_AA_55_AA_55_AA_55_AA_55

	Rank1 Bitboard = 0x_00_00_00_00_00_00_00_FF
	Rank2 Bitboard = 0x_00_00_00_00_00_00_FF_00
	Rank3 Bitboard = 0x_00_00_00_00_00_FF_00_00
	Rank4 Bitboard = 0x_00_00_00_00_FF_00_00_00
	Rank5 Bitboard = 0x_00_00_00_FF_00_00_00_00
	Rank6 Bitboard = 0x_00_00_FF_00_00_00_00_00
	Rank7 Bitboard = 0x_00_FF_00_00_00_00_00_00
	Rank8 Bitboard = 0x_FF_00_00_00_00_00_00_00

	FileA Bitboard = 0x_01_01_01_01_01_01_01_01
	FileB Bitboard = 0x_02_02_02_02_02_02_02_02
	FileC Bitboard = 0x_04_04_04_04_04_04_04_04
	FileD Bitboard = 0x_08_08_08_08_08_08_08_08
	FileE Bitboard = 0x_10_10_10_10_10_10_10_10
	FileF Bitboard = 0x_20_20_20_20_20_20_20_20
	FileG Bitboard = 0x_40_40_40_40_40_40_40_40
	FileH Bitboard = 0x_80_80_80_80_80_80_80_80

	WhiteHalf Bitboard = 0x_00_00_00_00_FF_FF_FF_FF
	BlackHalf Bitboard = 0x_FF_FF_FF_FF_00_00_00_00
	Queenside Bitboard = 0x_0F_0F_0F_0F_0F_0F_0F_0F
	Kingside  Bitboard = 0x_F0_F0_F0_F0_F0_F0_F0_F0

	Center4  Bitboard = 0x_00_00_00_18_18_00_00_00
	Center16 Bitboard = 0x_00_00_3C_3C_3C_3C_00_00
	Edge     Bitboard = 0x_FF_81_81_81_81_81_81_FF
)

var (
	Ranks = [Height]Bitboard{Rank1, Rank2, Rank3, Rank4, Rank5, Rank6, Rank7, Rank8}
	Files = [Width]Bitboard{FileA, FileB, FileC, FileD, FileE, FileF, FileG, FileH}
)
