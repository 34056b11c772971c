package ppu

// renderFrame draws one full frame into p.frame. It runs once, at the
// start of VBlank, rather than pixel-by-pixel during the visible
// scanlines: mid-frame scroll or palette changes (split-screen
// effects) are out of scope, matching SPEC_FULL.md's non-cycle-accurate
// rendering model.
func (p *PPU) renderFrame() {
	p.renderBackground()
	p.renderSprites()
}

func (p *PPU) renderBackground() {
	if p.mask&maskShowBG == 0 {
		backdrop := systemPalette[p.palette[0]&0x3F]
		for i := range p.frame {
			p.frame[i] = backdrop
		}
		return
	}

	bgTable := uint16(0)
	if p.ctrl&ctrlBGPattern != 0 {
		bgTable = 0x1000
	}

	baseCoarseX := int(p.v.coarseX())
	baseCoarseY := int(p.v.coarseY())
	baseFineY := int(p.v.fineY())
	baseNTX := p.v.nametableX()
	baseNTY := p.v.nametableY()
	fineX := int(p.x)

	for sy := 0; sy < ScreenHeight; sy++ {
		totalY := baseCoarseY*8 + baseFineY + sy
		ntY := baseNTY
		for totalY >= 240 {
			totalY -= 240
			ntY ^= 1
		}
		tileRow := totalY / 8
		fineYInTile := uint16(totalY % 8)

		for sx := 0; sx < ScreenWidth; sx++ {
			totalX := baseCoarseX*8 + fineX + sx
			ntX := baseNTX
			for totalX >= 256 {
				totalX -= 256
				ntX ^= 1
			}
			tileCol := totalX / 8
			fineXInTile := uint(7 - totalX%8)

			ntBase := nametableBase(ntX, ntY)
			tileIndex := p.vram[p.mirrorNametable(ntBase+uint16(tileRow*32+tileCol))]
			attr := p.vram[p.mirrorNametable(ntBase+0x3C0+uint16((tileRow/4)*8+(tileCol/4)))]
			shift := uint(((tileRow%4)/2)*4 + ((tileCol%4)/2)*2)
			palSel := (attr >> shift) & 0x03

			patAddr := bgTable + uint16(tileIndex)*16 + fineYInTile
			lo := p.cart.ChrRead(patAddr)
			hi := p.cart.ChrRead(patAddr + 8)
			pixelVal := ((hi>>fineXInTile)&1)<<1 | ((lo >> fineXInTile) & 1)

			var colorIdx uint8
			if pixelVal == 0 {
				colorIdx = p.palette[0]
			} else {
				colorIdx = p.palette[palSel*4+pixelVal]
			}
			p.frame[sy*ScreenWidth+sx] = systemPalette[colorIdx&0x3F]
		}
	}
}

func nametableBase(ntX, ntY uint16) uint16 {
	return 0x2000 + ntY*0x0800 + ntX*0x0400
}

// renderSprites does a simple back-to-front OAM pass (64 sprites,
// 8x8 only) rather than the hardware's 8-per-scanline secondary OAM
// evaluation; it still produces correct on-screen output and sets
// Sprite0Hit per spec.md §4.4.4, just without that limit's visual
// artifacts (flicker), which is out of scope.
func (p *PPU) renderSprites() {
	if p.mask&maskShowSprites == 0 {
		return
	}

	spriteTable := uint16(0)
	if p.ctrl&ctrlSpritePattern != 0 {
		spriteTable = 0x1000
	}

	// Back to front so sprite 0 (drawn last) wins priority ties,
	// matching hardware's lowest-OAM-index-wins rule.
	for i := 63; i >= 0; i-- {
		base := i * 4
		s := decodeSprite(p.oam[base : base+4])
		if s.top >= 0xEF {
			continue
		}

		for row := 0; row < 8; row++ {
			py := int(s.top) + 1 + row
			if py < 0 || py >= ScreenHeight {
				continue
			}
			patRow := row
			if s.flipV {
				patRow = 7 - row
			}
			patAddr := spriteTable + uint16(s.tile)*16 + uint16(patRow)
			lo := p.cart.ChrRead(patAddr)
			hi := p.cart.ChrRead(patAddr + 8)

			for col := 0; col < 8; col++ {
				px := int(s.left) + col
				if px < 0 || px >= ScreenWidth {
					continue
				}
				bit := col
				if !s.flipH {
					bit = 7 - col
				}
				pixelVal := ((hi>>uint(bit))&1)<<1 | ((lo >> uint(bit)) & 1)
				if pixelVal == 0 {
					continue
				}

				idx := py*ScreenWidth + px
				if i == 0 && p.mask&maskShowBG != 0 {
					p.status |= statusSprite0Hit
				}
				if s.priority == priorityBehind && p.backgroundOpaqueAt(idx) {
					continue
				}
				colorIdx := p.palette[16+s.subpalette*4+pixelVal]
				p.frame[idx] = systemPalette[colorIdx&0x3F]
			}
		}
	}
}

// backgroundOpaqueAt is a coarse approximation: it treats any pixel
// that isn't the universal backdrop color as opaque background, used
// only to decide whether a behind-priority sprite pixel should be
// hidden.
func (p *PPU) backgroundOpaqueAt(idx int) bool {
	return p.frame[idx] != systemPalette[p.palette[0]&0x3F]
}
